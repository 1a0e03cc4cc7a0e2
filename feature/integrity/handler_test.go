package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"dex-viewer/assets"
	"dex-viewer/core/catalog"
	"dex-viewer/core/database"
	"dex-viewer/core/storage"
	"dex-viewer/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	cat, err := catalog.New(catalog.Config{Mode: catalog.ModeStatic}, assets.JSON(), zap.NewNop())
	require.NoError(t, err)

	svc := NewService(Options{
		Client:  mockClient,
		Storage: storage.Config{Bucket: "test-bucket", Prefix: "data/json"},
		Catalog: cat,
		DB:      db,
	}, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient
}

func decode(t *testing.T, app *fiber.App, path string, status int) map[string]any {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	require.Equal(t, status, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

	body := decode(t, app, "/integrity/structure", 200)
	assert.Equal(t, "checked", body["status"])
	assert.Equal(t, []any{"data", "data/json"}, body["missing"])
}

func TestHandleStructureCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	body := decode(t, app, "/integrity/structure?fix=true", 200)
	assert.Equal(t, "fixed", body["status"])
	assert.Equal(t, []any{"data", "data/json"}, body["fixed"])
	mockClient.AssertCalled(t, "PutObject", mock.Anything, "test-bucket", "data/json/", mock.Anything, int64(0), mock.Anything)
}

func TestHandleStructureCheck_Error(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	body := decode(t, app, "/integrity/structure", 500)
	assert.Contains(t, body["error"], assert.AnError.Error())
}

func TestHandleDatasetsCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("StatObject", mock.Anything, "test-bucket", "data/json/abilities.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})
	mockClient.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)

	body := decode(t, app, "/integrity/datasets", 200)
	assert.Equal(t, []any{"abilities.json"}, body["missing"])
}

func TestHandleReferencesCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	body := decode(t, app, "/integrity/references", 200)
	assert.Equal(t, true, body["matched"])
	checked := body["checked"].(map[string]any)
	assert.Equal(t, float64(10), checked["moves"])
}

func TestHandleMirrorCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	body := decode(t, app, "/integrity/mirror", 200)
	assert.Equal(t, false, body["matched"])
	tables := body["tables"].(map[string]any)
	assert.Len(t, tables, 5)
	assert.Equal(t, "missing", tables["dex_types"].(map[string]any)["status"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)

	// Storage failures must not hide the other checks.
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	body := decode(t, app, "/integrity", 200)
	assert.Equal(t, "error", body["structure"].(map[string]any)["status"])
	assert.Equal(t, "error", body["datasets"].(map[string]any)["status"])
	assert.Equal(t, true, body["references"].(map[string]any)["matched"])
	assert.Contains(t, body["mirror"], "tables")
}

func TestHandlers_NotConfigured(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(Options{}, zap.NewNop())).RegisterRoutes(app)

	for _, path := range []string{"/integrity/structure", "/integrity/datasets", "/integrity/references", "/integrity/mirror"} {
		body := decode(t, app, path, 503)
		assert.Contains(t, body["error"], "not configured", path)
	}

	body := decode(t, app, "/integrity", 200)
	for _, name := range []string{"structure", "datasets", "references", "mirror"} {
		assert.Equal(t, "skipped", body[name].(map[string]any)["status"], name)
	}
}
