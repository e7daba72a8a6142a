package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/adapter/handler"
	adapterstorage "github.com/marcos-nsantos/cutout-presign-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/usecase/cors"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/usecase/presign"
)

const (
	minioImage    = "minio/minio:RELEASE.2025-04-22T22-12-26Z"
	redisImage    = "redis:7-alpine"
	minioUser     = "minioadmin"
	minioPassword = "minioadmin-secret"
	testBucket    = "cutouts-e2e"
	testRegion    = "us-east-1"
)

type appOptions struct {
	withRedis          bool
	requireKnownFileID bool
	rateLimitPerMin    int
}

type TestApp struct {
	Server     *httptest.Server
	BaseURL    string
	CORS       cors.Result
	Metrics    *observability.Metrics
	containers []testcontainers.Container
	redis      *redis.Client
	httpClient *http.Client
}

func setupTestApp(t *testing.T, opts appOptions) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	app := &TestApp{httpClient: &http.Client{Timeout: 10 * time.Second}}

	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        minioImage,
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			Cmd: []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/live").
				WithPort("9000/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	app.containers = append(app.containers, minioContainer)

	endpoint, err := minioContainer.PortEndpoint(ctx, "9000/tcp", "http")
	require.NoError(t, err)

	createBucket(t, ctx, endpoint)

	logger, _ := zap.NewDevelopment()
	app.Metrics = observability.NewMetrics()

	s3Storage, err := storage.NewS3Storage(config.S3Config{
		Endpoint:        endpoint,
		Region:          testRegion,
		Bucket:          testBucket,
		AccessKeyID:     minioUser,
		SecretAccessKey: minioPassword,
		ForcePathStyle:  true,
	})
	require.NoError(t, err)

	var (
		registry    adapterstorage.FileRegistry
		rateLimiter *middleware.RateLimiter
	)
	if opts.withRedis {
		app.redis = startRedis(t, ctx, app)
		registry = cache.NewFileRegistry(app.redis, time.Hour)
		if opts.rateLimitPerMin > 0 {
			rateLimiter = middleware.NewRateLimiter(app.redis, config.RateLimitConfig{
				Enabled:        true,
				RequestsPerMin: opts.rateLimitPerMin,
			}, logger)
		}
	}

	corsCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	app.CORS = cors.NewReconciler(s3Storage, true, logger, app.Metrics).Reconcile(corsCtx)
	cancel()

	presignSvc := presign.NewService(s3Storage, registry, presign.Config{
		Expiry:             time.Hour,
		RequireKnownFileID: opts.requireKnownFileID,
	}, logger, app.Metrics)

	router := server.NewRouter(server.RouterConfig{
		PresignHandler: handler.NewPresignHandler(presignSvc),
		RateLimiter:    rateLimiter,
		Metrics:        app.Metrics,
		Logger:         logger,
		Environment:    "test",
		AllowedOrigins: []string{"*"},
	})

	app.Server = httptest.NewServer(router.Engine())
	app.BaseURL = app.Server.URL

	return app
}

func startRedis(t *testing.T, ctx context.Context, app *TestApp) *redis.Client {
	t.Helper()

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	app.containers = append(app.containers, redisContainer)

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client, err := cache.NewRedisClient(ctx, config.RedisConfig{
		Enabled: true,
		Host:    host,
		Port:    port.Int(),
	})
	require.NoError(t, err)

	return client
}

// createBucket goes straight through the SDK; the service itself never
// creates buckets.
func createBucket(t *testing.T, ctx context.Context, endpoint string) {
	t.Helper()

	client := s3.New(s3.Options{
		Region:       testRegion,
		BaseEndpoint: aws.String(endpoint),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider(minioUser, minioPassword, ""),
	})

	_, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(testBucket)})
	require.NoError(t, err)
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	if app.redis != nil {
		app.redis.Close()
	}

	ctx := context.Background()
	for _, c := range app.containers {
		if err := c.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}

func (app *TestApp) post(path string, body any) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string) (*http.Response, error) {
	return app.httpClient.Get(app.BaseURL + path)
}

// putObject uploads through a signed URL the way a browser would.
func (app *TestApp) putObject(t *testing.T, url, contentType string, data []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (app *TestApp) getObject(t *testing.T, url string) (int, []byte) {
	t.Helper()

	resp, err := app.httpClient.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}
