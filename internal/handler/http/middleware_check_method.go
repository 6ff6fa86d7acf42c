// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Anish-A1/pricewise/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi calls it only when the routed path exists but the method is not
// registered for it. The answer is 404 Not Found with the usual
// {"message": ...} body, so unsupported methods look like unknown routes.
// It never dispatches back into the router.
func CheckHTTPMethod(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
