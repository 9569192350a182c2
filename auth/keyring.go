// Package auth stores the TMDB API read access token in the system keyring.
package auth

import (
	"errors"

	"github.com/marquee-cli/marquee/key"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	service = "marquee"
	user    = "tmdb-token"
)

func SetToken(token string) error {
	return keyring.Set(service, user, token)
}

func GetToken() (string, error) {
	return keyring.Get(service, user)
}

// DeleteToken removes the stored token. Removing a token that was never
// stored is not an error.
func DeleteToken() error {
	err := keyring.Delete(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}

	return err
}

// Source says where a token came from.
type Source string

const (
	SourceConfig  Source = "config"
	SourceKeyring Source = "keyring"
)

// Credential is a token together with its origin.
type Credential struct {
	Value  string
	Source Source
}

// Token resolves the token to use for TMDB requests. tmdb.token, which also
// picks up MARQUEE_TMDB_TOKEN, wins over the keyring.
func Token() mo.Option[Credential] {
	if token := viper.GetString(key.TMDBToken); token != "" {
		return mo.Some(Credential{Value: token, Source: SourceConfig})
	}

	if token, err := GetToken(); err == nil && token != "" {
		return mo.Some(Credential{Value: token, Source: SourceKeyring})
	}

	return mo.None[Credential]()
}
