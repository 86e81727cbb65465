package channel

import (
	"net/http"
	"net/http/httptest"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/aster/pkg/wordpress"
)

func noopLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

// newTestService wires a Service against a stub WordPress server. The caller
// must invoke the returned close func.
func newTestService(handler http.HandlerFunc) (*Service, wordpress.ConnectionMetadata, func()) {
	srv := httptest.NewServer(handler)

	logger := noopLogger()
	service := NewService(wordpress.NewClient(wordpress.DefaultConfig(), logger), logger)

	meta := wordpress.ConnectionMetadata{
		Name:              "My Blog",
		Login:             "admin",
		Password:          "hunter2",
		Author:            "7",
		WordpressLocation: srv.URL,
	}
	return service, meta, srv.Close
}

// downService returns a service whose WordPress location refuses connections.
func downService() (*Service, wordpress.ConnectionMetadata) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	logger := noopLogger()
	service := NewService(wordpress.NewClient(wordpress.DefaultConfig(), logger), logger)

	meta := wordpress.ConnectionMetadata{
		Login:             "admin",
		Password:          "hunter2",
		Author:            "7",
		WordpressLocation: srv.URL,
	}
	return service, meta
}
