package utils

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := jsoniter.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		Logger.Error(message, zap.Error(err), zap.Int("status", statusCode))
	}
	RespondJSON(w, statusCode, map[string]string{"error": message})
}

// zap logger
var Logger *zap.Logger = zap.NewNop()

func InitLogger() {
	var err error
	Logger, err = zap.NewDevelopment()
	if err != nil {
		panic("Failed to initialize zap logger: " + err.Error())
	}
	zap.ReplaceGlobals(Logger)
}

func SyncLogger() {
	if Logger != nil {
		Logger.Sync()
	}
}
