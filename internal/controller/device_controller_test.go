package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"IoTHub.gateway/internal/controller"
	"IoTHub.gateway/internal/repository"
	"IoTHub.gateway/internal/routes"
	"IoTHub.gateway/internal/service"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeviceServer(t *testing.T) *httptest.Server {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	repo := repository.NewRedisDeviceRepositoryFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	server := httptest.NewServer(routes.SetupDeviceRouter(controller.NewDeviceController(service.NewDeviceService(repo))))
	t.Cleanup(server.Close)
	return server
}

func putDevice(t *testing.T, server *httptest.Server, deviceID, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, server.URL+"/devices/"+deviceID, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestDeviceController_UpsertCreate(t *testing.T) {
	server := newDeviceServer(t)

	resp := putDevice(t, server, "1", `{"username":"test-user"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1", body["device_id"])
}

func TestDeviceController_GetUsername(t *testing.T) {
	server := newDeviceServer(t)
	putDevice(t, server, "2", `{"username":"test-user-2"}`)

	resp, err := http.Get(server.URL + "/devices/2/username")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "test-user-2", body["username"])
}

func TestDeviceController_UpsertUpdate(t *testing.T) {
	server := newDeviceServer(t)
	putDevice(t, server, "1", `{"username":"first"}`)

	resp := putDevice(t, server, "1", `{"username":"updated-user"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	getResp, err := http.Get(server.URL + "/devices/1/username")
	require.NoError(t, err)
	defer getResp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&body))
	assert.Equal(t, "updated-user", body["username"])
}

func TestDeviceController_GetUsernameNotFound(t *testing.T) {
	server := newDeviceServer(t)

	resp, err := http.Get(server.URL + "/devices/10/username")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeviceController_UpsertMissingUsername(t *testing.T) {
	server := newDeviceServer(t)

	resp := putDevice(t, server, "1", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "missing_field", body["error"]["kind"])
	assert.Equal(t, "username", body["error"]["field"])
}
