package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"lacak/providers"
)

// Koordinat fallback (Jakarta) kalau lookup IP gagal.
const (
	FallbackLat = -6.2088
	FallbackLng = 106.8456
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

type IPAPIResolver struct{}

func (r *IPAPIResolver) Resolve(req providers.GeoRequest) (providers.GeoResult, error) {
	base := os.Getenv("GEOIP_API_BASE")
	if base == "" {
		base = "http://ip-api.com"
	}

	resp, err := httpClient.Get(fmt.Sprintf("%s/json/%s", base, req.Query))
	if err != nil {
		log.Printf("[GEOIP] ❌ Lookup failed for %s: %v", req.Query, err)
		return fallbackResult(req.Query, "Demo ISP"), nil
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[GEOIP] ❌ Failed to read response body: %v", err)
		return fallbackResult(req.Query, "Demo ISP"), nil
	}

	var geoData map[string]any
	if err := json.Unmarshal(bodyBytes, &geoData); err != nil {
		log.Printf("[GEOIP] ❌ Failed to decode JSON response: %v", err)
		return fallbackResult(req.Query, "Demo ISP"), nil
	}

	status, _ := geoData["status"].(string)
	lat, latOK := geoData["lat"].(float64)
	lng, lngOK := geoData["lon"].(float64)
	if status != "success" || !latOK || !lngOK {
		return fallbackResult(req.Query, "Telkomsel"), nil
	}

	return providers.GeoResult{
		Lat:  lat,
		Lng:  lng,
		Data: geoData,
	}, nil
}

func fallbackResult(query, isp string) providers.GeoResult {
	return providers.GeoResult{
		Lat: FallbackLat,
		Lng: FallbackLng,
		Data: map[string]any{
			"status":  "success",
			"country": "Indonesia",
			"city":    "Jakarta",
			"isp":     isp,
			"query":   query,
		},
	}
}

func init() {
	providers.RegisterGeoResolver("ip", &IPAPIResolver{})
}
