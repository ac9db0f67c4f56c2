package dto

// PlaceRequest is one stop in an optimize request. Coordinates are pointers
// so a missing value can be told apart from zero.
type PlaceRequest struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

type OptimizeRouteRequest struct {
	Places []PlaceRequest `json:"places"`
}

type RouteResponse struct {
	Route           []string `json:"route"`
	TotalDistanceKm float64  `json:"total_distance_km"`
	Converged       bool     `json:"converged"`
}

type DayRouteResponse struct {
	Day             string   `json:"day"`
	Route           []string `json:"route"`
	TotalDistanceKm float64  `json:"total_distance_km"`
	Converged       bool     `json:"converged"`
}
