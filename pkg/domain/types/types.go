package types

// AppVersion is overwritten by -ldflags at release build.
var AppVersion = "dev"

const (
	// DefaultTable is the table readings are appended to unless configured otherwise.
	DefaultTable = "gcp-iot-tut.device.data"

	// FunctionName is the Functions Framework target for the CloudEvent handler.
	FunctionName = "IngestReading"
)
