package webapp

import (
	"net/http"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

var errorResponses = map[int]errorResponse{
	http.StatusBadRequest: {
		Code:    400,
		Title:   "Bad Request",
		Message: "The request could not be understood by the server.",
	},
	http.StatusNotFound: {
		Code:    404,
		Title:   "Not Found",
		Message: "The resource you're looking for doesn't exist.",
	},
	http.StatusInternalServerError: {
		Code:    500,
		Title:   "Internal Server Error",
		Message: "Something went wrong on our end. Please try again later.",
	},
}

func (webapp *WebApp) renderError(w http.ResponseWriter, code int, customMessage string) {
	resp, ok := errorResponses[code]
	if !ok {
		resp = errorResponse{
			Code:    code,
			Title:   "Error",
			Message: "An unexpected error occurred.",
		}
	}
	if customMessage != "" {
		resp.Message = customMessage
	}

	writeJSON(w, code, resp)
}

func (webapp *WebApp) notFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		webapp.renderError(w, http.StatusNotFound, "")
	}
}
