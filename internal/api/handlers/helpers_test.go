package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/almasezhe/warauction/internal/utils/response"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return resp
}

// decodeData re-marshals the envelope's data into dest.
func decodeData(t *testing.T, resp response.APIResponse, dest any) {
	t.Helper()

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dest))
}
