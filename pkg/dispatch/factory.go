package dispatch

import (
	"github.com/kasuboski/dvrdispatch/config"
	mhttp "github.com/kasuboski/dvrdispatch/pkg/http"
	"github.com/kasuboski/dvrdispatch/pkg/sickrage"
	"github.com/kasuboski/dvrdispatch/pkg/sonarr"
)

type HTTPClientFactory struct {
	http mhttp.HTTPClient
}

// NewClientFactory returns a factory whose clients share the given transport
func NewClientFactory(http mhttp.HTTPClient) ClientFactory {
	return HTTPClientFactory{http: http}
}

func (f HTTPClientFactory) Primary(settings config.Sonarr) PrimaryDVRClient {
	return sonarr.NewClient(mhttp.NewStdClient(f.http), settings.Scheme, settings.Host, settings.APIKey)
}

func (f HTTPClientFactory) Secondary(settings config.SickRage) SecondaryDVRClient {
	return sickrage.NewClient(f.http, settings.Scheme, settings.Host, settings.APIKey)
}
