package channel

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"

	"github.com/Ramsey-B/aster/pkg/wordpress"
)

// classifyRemoteFailure maps a remote call outcome that did not match the
// expected status onto the error surfaced to the helpdesk platform.
//
// A response with a status code always wins over the transport error flag:
// the remote's own status is passed through, with the response body attached
// as error_info when present. Only a call with no response at all is reported
// as service unavailable.
func classifyRemoteFailure(outcome wordpress.Outcome) error {
	if outcome.Received() {
		herr := httperror.ToHTTPError(httperror.NewHTTPError(outcome.StatusCode, "wordpress returned an error"))
		if len(outcome.Body) > 0 {
			herr.Meta = map[string]any{"error_info": string(outcome.Body)}
		}
		return herr
	}
	return httperror.NewHTTPError(http.StatusServiceUnavailable, "unable to reach wordpress")
}

// badUpstreamData reports a call where WordPress answered successfully but
// the body did not parse as the expected structure.
func badUpstreamData(err error) error {
	return httperror.NewHTTPErrorf(http.StatusBadGateway, "unexpected data from wordpress: %s", err)
}
