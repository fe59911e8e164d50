package config

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Sonarr   Sonarr   `json:"sonarr" yaml:"sonarr" mapstructure:"sonarr"`
	SickRage SickRage `json:"sickrage" yaml:"sickrage" mapstructure:"sickrage"`
	Storage  Storage  `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server   Server   `json:"server" yaml:"server" mapstructure:"server"`
	Dispatch Dispatch `json:"dispatch" yaml:"dispatch" mapstructure:"dispatch"`
	Notify   Notify   `json:"notify" yaml:"notify" mapstructure:"notify"`
	Manager  Manager  `json:"manager" yaml:"manager" mapstructure:"manager"`
}

// Sonarr holds the settings for the primary DVR.
// Profile and root folder ids are kept as strings because they are parsed at
// dispatch time with a fallback from the anime value to the standard one.
type Sonarr struct {
	Enabled              bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Scheme               string `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`
	Host                 string `json:"host" yaml:"host" mapstructure:"host" validate:"required_if=Enabled true"`
	APIKey               string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	QualityProfile       string `json:"qualityProfile" yaml:"qualityProfile" mapstructure:"qualityProfile"`
	QualityProfileAnime  string `json:"qualityProfileAnime" yaml:"qualityProfileAnime" mapstructure:"qualityProfileAnime"`
	RootPath             string `json:"rootPath" yaml:"rootPath" mapstructure:"rootPath"`
	RootPathAnime        string `json:"rootPathAnime" yaml:"rootPathAnime" mapstructure:"rootPathAnime"`
	LanguageProfile      int    `json:"languageProfile" yaml:"languageProfile" mapstructure:"languageProfile" validate:"gte=0"`
	LanguageProfileAnime int    `json:"languageProfileAnime" yaml:"languageProfileAnime" mapstructure:"languageProfileAnime" validate:"gte=0"`
	Tag                  *int   `json:"tag,omitempty" yaml:"tag" mapstructure:"tag"`
	AnimeTag             *int   `json:"animeTag,omitempty" yaml:"animeTag" mapstructure:"animeTag"`
	SendUserTags         bool   `json:"sendUserTags" yaml:"sendUserTags" mapstructure:"sendUserTags"`
	AddOnly              bool   `json:"addOnly" yaml:"addOnly" mapstructure:"addOnly"`
	SeasonFolders        bool   `json:"seasonFolders" yaml:"seasonFolders" mapstructure:"seasonFolders"`
}

// SickRage holds the settings for the secondary DVR.
type SickRage struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Scheme         string   `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`
	Host           string   `json:"host" yaml:"host" mapstructure:"host" validate:"required_if=Enabled true"`
	APIKey         string   `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey" validate:"required_if=Enabled true"`
	QualityProfile string   `json:"qualityProfile" yaml:"qualityProfile" mapstructure:"qualityProfile"`
	Qualities      []string `json:"qualities" yaml:"qualities" mapstructure:"qualities"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Dispatch controls the retry policy used while waiting on the DVR to scrape metadata
type Dispatch struct {
	SeasonAttempts      int           `json:"seasonAttempts" yaml:"seasonAttempts" mapstructure:"seasonAttempts" validate:"gte=0"`
	SeasonDelay         time.Duration `json:"seasonDelay" yaml:"seasonDelay" mapstructure:"seasonDelay" validate:"gte=0"`
	LegacyAttempts      int           `json:"legacyAttempts" yaml:"legacyAttempts" mapstructure:"legacyAttempts" validate:"gte=0"`
	LegacyDelay         time.Duration `json:"legacyDelay" yaml:"legacyDelay" mapstructure:"legacyDelay" validate:"gte=0"`
	EpisodePollInterval time.Duration `json:"episodePollInterval" yaml:"episodePollInterval" mapstructure:"episodePollInterval" validate:"gte=0"`
	EpisodePollTimeout  time.Duration `json:"episodePollTimeout" yaml:"episodePollTimeout" mapstructure:"episodePollTimeout" validate:"gte=0"`
}

type Notify struct {
	WebhookURL string `json:"webhookURL" yaml:"webhookURL" mapstructure:"webhookURL" validate:"omitempty,url"`
}

// Manager houses configuration related to the manager and fault queue retries
type Manager struct {
	Jobs Jobs `json:"jobs" yaml:"jobs" mapstructure:"jobs"`
}

type Jobs struct {
	// FaultRetry is how often open fault queue entries are re-dispatched. Zero disables the job.
	FaultRetry time.Duration `json:"faultRetry" yaml:"faultRetry" mapstructure:"faultRetry" validate:"gte=0"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the struct level constraints of the configuration
func (c Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	cerr := &ConfigError{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			cerr.Errors = append(cerr.Errors, fe.Namespace()+" failed on "+fe.Tag())
		}
		return cerr
	}

	return err
}

// SonarrSettings returns the primary DVR settings
func (c Config) SonarrSettings(ctx context.Context) (Sonarr, error) {
	return c.Sonarr, nil
}

// SickRageSettings returns the secondary DVR settings
func (c Config) SickRageSettings(ctx context.Context) (SickRage, error) {
	return c.SickRage, nil
}
