package torznab

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"
)

type err struct {
	Code        int
	Description string
}

func (e err) Error() string {
	return e.Description
}

var (
	ErrIncorrectUserCreds   = err{100, "Incorrect user credentials"}
	ErrInsufficientPrivs    = err{102, "Insufficient privileges/not authorized"}
	ErrMissingParameter     = err{200, "Missing parameter"}
	ErrIncorrectParameter   = err{201, "Incorrect parameter"}
	ErrNoSuchFunction       = err{202, "No such function. (Function not defined in this specification)."}
	ErrFunctionNotAvailable = err{203, "Function not available. (Optional function is not implemented)."}
	ErrNoSuchItem           = err{300, "No such item."}
	ErrUnknownError         = err{900, "Unknown error"}
)

// Error writes a torznab error document.
func Error(c *gin.Context, description string, err err) {
	resp := struct {
		XMLName     struct{} `xml:"error"`
		Code        int      `xml:"code,attr"`
		Description string   `xml:"description,attr"`
	}{
		Code:        err.Code,
		Description: description,
	}
	x, mErr := xml.MarshalIndent(resp, "", "  ")
	if mErr != nil {
		http.Error(c.Writer, mErr.Error(), http.StatusInternalServerError)
		return
	}
	c.Data(statusFor(err), "application/xml", x)
}

func statusFor(e err) int {
	switch {
	case e.Code < 200:
		return http.StatusUnauthorized
	case e.Code < 300:
		return http.StatusBadRequest
	case e.Code < 900:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
