// Package restapi exposes the dashboard's JSON and chart endpoints. Every
// handler is a pure function of the request's filter parameters and the
// immutable loaded dataset.
package restapi

import (
	"econdash.hanlabs.org/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}
