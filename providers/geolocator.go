package providers

import (
	"strings"
)

type GeoRequest struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

type GeoResult struct {
	Lat  float64        `json:"lat"`
	Lng  float64        `json:"lng"`
	Data map[string]any `json:"data"`
}

type GeoResolver interface {
	Resolve(req GeoRequest) (GeoResult, error)
}

var GeoResolvers = map[string]GeoResolver{}

func RegisterGeoResolver(targetType string, resolver GeoResolver) {
	GeoResolvers[strings.ToLower(targetType)] = resolver
}

func GetGeoResolver(targetType string) GeoResolver {
	return GeoResolvers[strings.ToLower(targetType)]
}
