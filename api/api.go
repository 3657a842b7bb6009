// Package api carries the OpenAPI document of the HTTP interface.
//
// internal/generated/servers is generated from it:
//
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -generate types,echo-server -package servers -o ../internal/generated/servers/api.gen.go openapi.yaml
package api

import _ "embed"

// OpenAPI is the raw YAML document.
//
//go:embed openapi.yaml
var OpenAPI []byte
