package constvars

const (
	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK                    = 200
	StatusCreated               = 201
	StatusBadRequest            = 400
	StatusNotFound              = 404
	StatusRequestEntityTooLarge = 413
	StatusUnprocessableEntity   = 422

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	HeaderLink        = "Link"
)
