// Package http implements the REST transport of the PriceWise backend.
//
// Routes are mounted under /api. Cross-cutting concerns such as request
// tracing, access logging, response compression, request timeouts and
// credential checks are handled here before requests reach the service
// layer.
package http
