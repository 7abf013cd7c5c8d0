package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

func lookupEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func GetEnvString(key, defaultValue string) string {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return intValue
}

func GetEnvInt64(key string, defaultValue int64) int64 {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return intValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return boolValue
}
