package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultRadiusKm           = 50.0
	defaultWildcardBloodType  = "Any"
	defaultClickAction        = "FLUTTER_NOTIFICATION_CLICK"
	defaultMulticastBatchSize = 500
	defaultUsersCollection    = "users"
	defaultConversationsColl  = "conversations"
	defaultRedisGeoKey        = "pulse:candidates:geo"
	defaultRedisHashPrefix    = "pulse:candidate:"
	defaultRedisConvPrefix    = "pulse:conversation:"
	defaultMemoryTileZoom     = 9
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for push notifications and Firestore
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// CandidateStore selects where candidates and conversations are read from
	CandidateStore *CandidateStoreConfig `json:"candidateStore" yaml:"candidateStore"`

	// Redis configuration for the geo index store
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Notifier configuration for proximity and chat notifications
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Topic receiving broadcast request events (for google provider)
	BroadcastTopicID string `json:"broadcastTopicId" yaml:"broadcastTopicId"`

	// Topic receiving chat message events (for google provider)
	ChatTopicID string `json:"chatTopicId" yaml:"chatTopicId"`

	// Base URL of the notifier worker for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// CandidateStoreConfig defines the candidate store backend
type CandidateStoreConfig struct {
	// Provider: "firestore", "postgres", "redis" or "memory"
	Provider string `json:"provider" yaml:"provider"`

	// Firestore collection holding user profiles
	UsersCollection string `json:"usersCollection" yaml:"usersCollection"`

	// Firestore collection holding conversations
	ConversationsCollection string `json:"conversationsCollection" yaml:"conversationsCollection"`

	// Firestore user locations are GeoPoints and may be range-queried by latitude
	GeoPointQuery bool `json:"geoPointQuery" yaml:"geoPointQuery"`

	// Bucket URL and object key of a CSV seed for the memory store,
	// e.g. "file:///var/lib/pulse" and "users.csv", or "gs://bucket" for GCS
	SeedURL string `json:"seedUrl" yaml:"seedUrl"`
	SeedKey string `json:"seedKey" yaml:"seedKey"`

	// Tile zoom used to bucket candidates in the memory store
	TileZoom int `json:"tileZoom" yaml:"tileZoom"`
}

// RedisConfig defines the Redis connection used by the geo index store
type RedisConfig struct {
	Addr       string `json:"addr" yaml:"addr"`
	Password   string `json:"password" yaml:"password"`
	DB         int    `json:"db" yaml:"db"`
	GeoKey     string `json:"geoKey" yaml:"geoKey"`
	HashPrefix string `json:"hashPrefix" yaml:"hashPrefix"`

	// Prefix of the list holding a conversation's participants
	ConversationPrefix string `json:"conversationPrefix" yaml:"conversationPrefix"`
}

// NotifierConfig defines proximity matching and payload settings
type NotifierConfig struct {
	// Radius around a request in kilometers, inclusive
	RadiusKm float64 `json:"radiusKm" yaml:"radiusKm"`

	// Blood type on a request that matches every candidate
	WildcardBloodType string `json:"wildcardBloodType" yaml:"wildcardBloodType"`

	// Click action the mobile client routes on
	ClickAction string `json:"clickAction" yaml:"clickAction"`

	// Tokens per multicast call, capped at 500
	MulticastBatchSize int `json:"multicastBatchSize" yaml:"multicastBatchSize"`
}

// ApplyDefaults fills zero values with the documented defaults.
func (c *NotifierConfig) ApplyDefaults() {
	if c.RadiusKm <= 0 {
		c.RadiusKm = defaultRadiusKm
	}
	if strings.TrimSpace(c.WildcardBloodType) == "" {
		c.WildcardBloodType = defaultWildcardBloodType
	}
	if strings.TrimSpace(c.ClickAction) == "" {
		c.ClickAction = defaultClickAction
	}
	if c.MulticastBatchSize <= 0 || c.MulticastBatchSize > defaultMulticastBatchSize {
		c.MulticastBatchSize = defaultMulticastBatchSize
	}
}

// ApplyDefaults fills zero values with the documented defaults.
func (c *CandidateStoreConfig) ApplyDefaults() {
	if c.UsersCollection == "" {
		c.UsersCollection = defaultUsersCollection
	}
	if c.ConversationsCollection == "" {
		c.ConversationsCollection = defaultConversationsColl
	}
	if c.TileZoom <= 0 {
		c.TileZoom = defaultMemoryTileZoom
	}
}

// ApplyDefaults fills zero values with the documented defaults.
func (c *RedisConfig) ApplyDefaults() {
	if c.GeoKey == "" {
		c.GeoKey = defaultRedisGeoKey
	}
	if c.HashPrefix == "" {
		c.HashPrefix = defaultRedisHashPrefix
	}
	if c.ConversationPrefix == "" {
		c.ConversationPrefix = defaultRedisConvPrefix
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	cfg.Notifier.ApplyDefaults()

	if cfg.CandidateStore == nil {
		cfg.CandidateStore = &CandidateStoreConfig{}
	}
	cfg.CandidateStore.ApplyDefaults()

	if cfg.Redis != nil {
		cfg.Redis.ApplyDefaults()
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
