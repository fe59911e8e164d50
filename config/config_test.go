package config

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kasuboski/dvrdispatch/config/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Sonarr: Sonarr{
				Enabled:        true,
				Scheme:         "https",
				Host:           "my-sonarr-host",
				APIKey:         "my-sonarr-api-key",
				QualityProfile: "4",
				RootPath:       "1",
				Tag:            ptr(3),
			},
			SickRage: SickRage{
				Scheme:         "http",
				Host:           "my-sickrage-host",
				APIKey:         "my-sickrage-api-key",
				QualityProfile: "hd720p",
				Qualities:      []string{"sdtv", "hd720p"},
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("sonarr.scheme", "https")
		cu.SetDefault("dispatch.seasonDelay", "500ms")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Sonarr: Sonarr{
				Scheme: "https",
			},
			Dispatch: Dispatch{
				SeasonDelay: time.Millisecond * 500,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := Config{
			Sonarr: Sonarr{Enabled: true, Scheme: "http", Host: "sonarr:8989"},
			Notify: Notify{WebhookURL: "https://hooks.example.com/dvr"},
		}
		assert.NoError(t, c.Validate())
	})

	t.Run("disabled providers need no host", func(t *testing.T) {
		assert.NoError(t, Config{}.Validate())
	})

	t.Run("enabled providers need a host", func(t *testing.T) {
		c := Config{
			Sonarr:   Sonarr{Enabled: true},
			SickRage: SickRage{Enabled: true, Host: "sickrage"},
		}
		err := c.Validate()
		require.Error(t, err)

		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Len(t, cerr.Errors, 2)
		assert.Contains(t, cerr.Error(), "Config.Sonarr.Host failed on required_if")
		assert.Contains(t, cerr.Error(), "Config.SickRage.APIKey failed on required_if")
	})

	t.Run("bad webhook url", func(t *testing.T) {
		c := Config{Notify: Notify{WebhookURL: "not a url"}}
		assert.Error(t, c.Validate())
	})
}

func TestConfig_Settings(t *testing.T) {
	c := Config{
		Sonarr:   Sonarr{Enabled: true, QualityProfile: "5"},
		SickRage: SickRage{QualityProfile: "sdtv"},
	}

	s, err := c.SonarrSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, c.Sonarr, s)

	sr, err := c.SickRageSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, c.SickRage, sr)
}
