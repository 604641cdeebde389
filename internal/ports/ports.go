package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProvider
	SnapshotCache   WeatherSnapshotCache
	Geolocator      Geolocator

	// Preferences
	PreferenceRepository PreferenceRepository

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
