package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRestaurantID = "restaurant_id"
	FieldBatchID      = "batch_id"
	FieldDate         = "date"
	FieldTimeframe    = "timeframe"
	FieldPartitionId  = "partition_id"
)
