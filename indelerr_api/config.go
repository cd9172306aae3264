package indelerr_api

import (
	"os"

	"github.com/nvnieuwk/indelerr/minimize"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// The model settings used when no configuration file overrides them
func DefaultConfig() *Config {
	config := &Config{}
	config.defineMissing()
	return config
}

// Read the configuration file, cast it to its struct and validate
// An empty file name returns the default configuration
func ReadConfig(file string) (*Config, error) {
	if file == "" {
		return DefaultConfig(), nil
	}

	configFile, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the config file")
	}

	var config Config
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse the config file '%s'", file)
	}

	config.defineMissing()
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file '%s'", file)
	}
	return &config, nil
}

// Define all missing fields
func (config *Config) defineMissing() {
	defineSmoother(&config.Rate, 1e-3, 0.5)
	defineSmoother(&config.LocusRate, 0.8, 1.0)
	defineSmoother(&config.Theta, 1e-3, 0.4)

	defineFloat(&config.CleanLocusIndelRate, 1e-8)
	defineFloat(&config.HomAltRate, 0.99)
	defineFloat(&config.HetAltRate, 0.5)
	defineFloat(&config.InitErrorRate, 1e-3)
	defineFloat(&config.InitNoisyLocusRate, 0.4)
	defineFloat(&config.DefaultTheta, 1e-4)

	if config.LockTheta == nil {
		lockTheta := true
		config.LockTheta = &lockTheta
	}
	if config.LowRepeatCount == 0 {
		config.LowRepeatCount = 2
	}
	if len(config.Motifs) == 0 {
		config.Motifs = []MotifConfig{
			{RepeatPatternSize: 1, MaxRepeatCount: 16},
			{RepeatPatternSize: 2, MaxRepeatCount: 8},
		}
	}
	if config.NonStrRepeatPatternSize == 0 {
		config.NonStrRepeatPatternSize = 1
	}

	// Minimizer settings
	if config.Minimizer.Method == "" {
		config.Minimizer.Method = minimize.MethodPowell
	}
	defineFloat(&config.Minimizer.Step, 0.0005)
	defineFloat(&config.Minimizer.StartTolerance, 1e-10)
	defineFloat(&config.Minimizer.EndTolerance, 1e-10)
	defineFloat(&config.Minimizer.LineTolerance, 1e-10)
	if config.Minimizer.MaxIterations == 0 {
		config.Minimizer.MaxIterations = 40
	}
	defineFloat(&config.Minimizer.StepGrowth, 100)
}

func defineSmoother(smoother *SmootherConfig, trigger, ceiling float64) {
	defineFloat(&smoother.Trigger, trigger)
	defineFloat(&smoother.Ceiling, ceiling)
}

func defineFloat(value *float64, def float64) {
	if *value == 0 {
		*value = def
	}
}

// Check that all values describe a usable model
func (config *Config) Validate() error {
	smoothers := map[string]SmootherConfig{
		"rate":      config.Rate,
		"locusRate": config.LocusRate,
		"theta":     config.Theta,
	}
	for name, smoother := range smoothers {
		if !isRate(smoother.Trigger) || !isRate(smoother.Ceiling) {
			return errors.Errorf("%s trigger and ceiling must lie in (0,1]", name)
		}
	}

	rates := map[string]float64{
		"cleanLocusIndelRate": config.CleanLocusIndelRate,
		"homAltRate":          config.HomAltRate,
		"hetAltRate":          config.HetAltRate,
		"initErrorRate":       config.InitErrorRate,
		"initNoisyLocusRate":  config.InitNoisyLocusRate,
		"defaultTheta":        config.DefaultTheta,
	}
	for name, rate := range rates {
		if !isRate(rate) || rate == 1 {
			return errors.Errorf("%s must lie in (0,1)", name)
		}
	}

	if len(config.Motifs) == 0 {
		return errors.New("at least one motif must be configured")
	}
	for _, motif := range config.Motifs {
		if motif.RepeatPatternSize == 0 {
			return errors.New("motif repeatPatternSize must be positive")
		}
		if motif.MaxRepeatCount < config.LowRepeatCount {
			return errors.Errorf("motif %d maxRepeatCount %d is below lowRepeatCount %d",
				motif.RepeatPatternSize, motif.MaxRepeatCount, config.LowRepeatCount)
		}
	}

	if !minimize.IsMethod(config.Minimizer.Method) {
		return errors.Errorf("unknown minimizer method '%s'", config.Minimizer.Method)
	}
	if config.Minimizer.Step <= 0 {
		return errors.New("minimizer step must be positive")
	}
	if config.Minimizer.StepGrowth < 0 {
		return errors.New("minimizer stepGrowth cannot be negative")
	}
	if config.Minimizer.MaxIterations < 0 {
		return errors.New("minimizer maxIterations cannot be negative")
	}
	return nil
}

func isRate(value float64) bool {
	return value > 0 && value <= 1
}

// Whether theta is kept at its prior during the search
func (config *Config) IsLockTheta() bool {
	return config.LockTheta == nil || *config.LockTheta
}
