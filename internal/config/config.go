package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Settings holds every external credential and endpoint the API needs.
// All required values are checked once at startup; the process refuses
// to start when any of them is missing.
type Settings struct {
	// Postgres (Supabase-hosted)
	DatabaseURL string

	// Identity provider (Supabase Auth)
	SupabaseURL     string
	SupabaseAnonKey string

	// Azure OpenAI: vision chat completions
	AzureOpenAIAPIKey     string
	AzureOpenAIEndpoint   string
	AzureOpenAIDeployment string
	AzureOpenAIAPIVersion string

	// Azure OpenAI: embeddings (separate deployment)
	EmbeddingEndpoint   string
	EmbeddingAPIKey     string
	EmbeddingDeployment string
	EmbeddingAPIVersion string

	// Object storage for uploaded menu photos (optional; archiving is
	// skipped when unset)
	R2Endpoint      string
	R2AccessKey     string
	R2SecretKey     string
	R2Bucket        string
	R2PublicBaseURL string

	Port        string
	Environment string
}

var required = []string{
	"DATABASE_URL",
	"SUPABASE_URL",
	"SUPABASE_ANON_KEY",
	"AZURE_OPENAI_API_KEY",
	"AZURE_OPENAI_ENDPOINT",
	"AZURE_OPENAI_DEPLOYMENT",
	"AZURE_OPENAI_API_VERSION",
	"AZURE_OPENAI_EMBEDDING_ENDPOINT",
	"AZURE_OPENAI_EMBEDDING_API_KEY",
	"AZURE_OPENAI_EMBEDDING_DEPLOYMENT",
	"AZURE_OPENAI_EMBEDDING_API_VERSION",
}

// Load reads settings from the environment (and .env outside production)
// and fails on the first missing required variable.
func Load() (*Settings, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			return nil, fmt.Errorf("missing env var: %s", k)
		}
	}

	s := &Settings{
		DatabaseURL: os.Getenv("DATABASE_URL"),

		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),

		AzureOpenAIAPIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureOpenAIEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureOpenAIDeployment: os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
		AzureOpenAIAPIVersion: os.Getenv("AZURE_OPENAI_API_VERSION"),

		EmbeddingEndpoint:   os.Getenv("AZURE_OPENAI_EMBEDDING_ENDPOINT"),
		EmbeddingAPIKey:     os.Getenv("AZURE_OPENAI_EMBEDDING_API_KEY"),
		EmbeddingDeployment: os.Getenv("AZURE_OPENAI_EMBEDDING_DEPLOYMENT"),
		EmbeddingAPIVersion: os.Getenv("AZURE_OPENAI_EMBEDDING_API_VERSION"),

		R2Endpoint:      os.Getenv("R2_ENDPOINT"),
		R2AccessKey:     os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey:     os.Getenv("R2_SECRET_KEY"),
		R2Bucket:        os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),

		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("APP_ENV"),
	}

	if s.Port == "" {
		s.Port = "8000"
	}

	return s, nil
}

// StorageConfigured reports whether the optional R2 credentials are all set.
func (s *Settings) StorageConfigured() bool {
	return s.R2Endpoint != "" &&
		s.R2AccessKey != "" &&
		s.R2SecretKey != "" &&
		s.R2Bucket != "" &&
		s.R2PublicBaseURL != ""
}
