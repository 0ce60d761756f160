package config

const (
	defaultConfigPath             = "~/.config/kord/config.toml"
	projectConfigName             = "kord.toml"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
	defaultLogOutput              = "stderr"
	defaultMaxCandidates          = 8
	maxCandidatesLimit            = 32
	defaultChromaThreshold        = 0.5
	defaultMIDITempo              = 120.0
	defaultMIDIVelocity           = 90
	defaultMIDIDurationBeats      = 4.0
	defaultAPIBind                = "127.0.0.1:7490"
	defaultAPIReadTimeoutSeconds  = 10
	defaultAPIShutdownTimeoutSecs = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Output: defaultLogOutput,
		},
		Resolver: Resolver{
			MaxCandidates: defaultMaxCandidates,
		},
		Chroma: Chroma{
			Threshold: defaultChromaThreshold,
		},
		MIDI: MIDI{
			Tempo:         defaultMIDITempo,
			Velocity:      defaultMIDIVelocity,
			DurationBeats: defaultMIDIDurationBeats,
		},
		API: API{
			Bind:                   defaultAPIBind,
			ReadTimeoutSeconds:     defaultAPIReadTimeoutSeconds,
			ShutdownTimeoutSeconds: defaultAPIShutdownTimeoutSecs,
		},
	}
}
