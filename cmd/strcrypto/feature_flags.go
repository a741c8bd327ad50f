package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

const featurePrefix = "FEATURE"

type FeatureFlags struct {
	// SampleWithReplacement lifts the 64-byte cap on keyless encryption by
	// allowing repeated key characters.
	SampleWithReplacement bool `split_words:"true"`
}

// GetFeatureFlags reads FEATURE_* variables. Entries from dotenv fill in
// variables the environment leaves unset, as godotenv.Load does.
func GetFeatureFlags(dotenv map[string]string) (*FeatureFlags, error) {
	for k, val := range dotenv {
		if !strings.HasPrefix(k, featurePrefix+"_") {
			continue
		}
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return nil, fmt.Errorf("unable to set %s: %w", k, err)
		}
	}

	flags := &FeatureFlags{}
	err := envconfig.Process(featurePrefix, flags)
	if err != nil {
		return nil, fmt.Errorf("unable to parse feature flags config: %w", err)
	}

	return flags, nil
}

func (f *FeatureFlags) Log(logger log.FieldLogger) {
	val := reflect.ValueOf(*f)
	typeOfStruct := val.Type()

	for i := 0; i < val.NumField(); i++ {
		logger.Debugf("feature %s: %v", typeOfStruct.Field(i).Name, val.Field(i).Interface())
	}
}
