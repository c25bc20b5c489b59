package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type EnvValue interface {
	string | int | bool
}

func GetEnv[V EnvValue](name string, defaultValue V) V {
	envValue, ok := os.LookupEnv(name)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[V](name, envValue)
}

func GetRequiredEnv[V EnvValue](name string) V {
	envValue, ok := os.LookupEnv(name)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	return parseEnv[V](name, envValue)
}

func parseEnv[V EnvValue](name, envValue string) V {
	var value V
	switch ptr := any(&value).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not an integer", name, envValue))
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a boolean", name, envValue))
		}
		*ptr = boolValue
	}
	return value
}
