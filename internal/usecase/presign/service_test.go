package presign_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/mocks"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/usecase/presign"
)

const expiry = time.Hour

var imageKeyPattern = regexp.MustCompile(`^images/[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\.png$`)

func TestService_PresignImage(t *testing.T) {
	t.Run("signs put and get for a fresh image key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		metrics := observability.NewMetrics()
		svc := presign.NewService(signer, nil, presign.Config{Expiry: expiry}, zap.NewNop(), metrics)

		ctx := context.Background()
		var putKey string
		signer.EXPECT().PresignPut(ctx, gomock.Any(), "image/png", expiry).
			DoAndReturn(func(_ context.Context, key, _ string, _ time.Duration) (string, error) {
				putKey = key
				return "https://s3.test/bucket/" + key + "?op=put", nil
			})
		signer.EXPECT().PresignGet(ctx, gomock.Any(), expiry).
			DoAndReturn(func(_ context.Context, key string, _ time.Duration) (string, error) {
				return "https://s3.test/bucket/" + key + "?op=get", nil
			})

		before := time.Now()
		result, err := svc.PresignImage(ctx, presign.ImageInput{Filename: "cat.photo.png", ContentType: "image/png"})

		require.NoError(t, err)
		assert.Regexp(t, imageKeyPattern, result.Key)
		assert.Equal(t, putKey, result.Key)
		assert.Equal(t, "images/"+result.FileID.String()+".png", result.Key)
		assert.Equal(t, "https://s3.test/bucket/"+result.Key+"?op=put", result.UploadURL)
		assert.Equal(t, "https://s3.test/bucket/"+result.Key+"?op=get", result.PublicURL)
		assert.WithinDuration(t, before.Add(expiry), result.ExpiresAt, 5*time.Second)
		assert.Equal(t, float64(1), metrics.PresignCount(presign.KindImage, "ok"))
	})

	t.Run("defaults content type to jpeg", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		svc := presign.NewService(signer, nil, presign.Config{Expiry: expiry}, zap.NewNop(), nil)

		ctx := context.Background()
		signer.EXPECT().PresignPut(ctx, gomock.Any(), "image/jpeg", expiry).Return("https://s3.test/put", nil)
		signer.EXPECT().PresignGet(ctx, gomock.Any(), expiry).Return("https://s3.test/get", nil)

		result, err := svc.PresignImage(ctx, presign.ImageInput{Filename: "photo.jpg"})

		require.NoError(t, err)
		assert.Contains(t, result.Key, ".jpg")
	})

	t.Run("issues distinct ids across calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		svc := presign.NewService(signer, nil, presign.Config{Expiry: expiry}, zap.NewNop(), nil)

		ctx := context.Background()
		signer.EXPECT().PresignPut(ctx, gomock.Any(), gomock.Any(), expiry).Return("https://s3.test/put", nil).Times(50)
		signer.EXPECT().PresignGet(ctx, gomock.Any(), expiry).Return("https://s3.test/get", nil).Times(50)

		seen := make(map[string]struct{})
		for range 50 {
			result, err := svc.PresignImage(ctx, presign.ImageInput{Filename: "photo.jpg"})
			require.NoError(t, err)
			seen[result.FileID.String()] = struct{}{}
		}
		assert.Len(t, seen, 50)
	})

	t.Run("rejects filename without extension", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		metrics := observability.NewMetrics()
		svc := presign.NewService(signer, nil, presign.Config{Expiry: expiry}, zap.NewNop(), metrics)

		result, err := svc.PresignImage(context.Background(), presign.ImageInput{Filename: "photo"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidFilename)
		assert.Equal(t, float64(1), metrics.PresignCount(presign.KindImage, "rejected"))
	})

	t.Run("surfaces signing failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		metrics := observability.NewMetrics()
		svc := presign.NewService(signer, nil, presign.Config{Expiry: expiry}, zap.NewNop(), metrics)

		ctx := context.Background()
		signer.EXPECT().PresignPut(ctx, gomock.Any(), gomock.Any(), expiry).Return("", errors.New("invalid access key"))

		result, err := svc.PresignImage(ctx, presign.ImageInput{Filename: "photo.jpg"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrPresignFailed)
		assert.ErrorContains(t, err, "invalid access key")
		assert.Equal(t, float64(1), metrics.PresignCount(presign.KindImage, "failed"))
	})

	t.Run("records issued id in registry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		registry := mocks.NewMockFileRegistry(ctrl)
		svc := presign.NewService(signer, registry, presign.Config{Expiry: expiry}, zap.NewNop(), nil)

		ctx := context.Background()
		var registered string
		signer.EXPECT().PresignPut(ctx, gomock.Any(), gomock.Any(), expiry).Return("https://s3.test/put", nil)
		signer.EXPECT().PresignGet(ctx, gomock.Any(), expiry).Return("https://s3.test/get", nil)
		registry.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
			registered = id
			return nil
		})

		result, err := svc.PresignImage(ctx, presign.ImageInput{Filename: "photo.jpg"})

		require.NoError(t, err)
		assert.Equal(t, result.FileID.String(), registered)
	})

	t.Run("registry failure does not fail the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		registry := mocks.NewMockFileRegistry(ctrl)
		svc := presign.NewService(signer, registry, presign.Config{Expiry: expiry}, zap.NewNop(), nil)

		ctx := context.Background()
		signer.EXPECT().PresignPut(ctx, gomock.Any(), gomock.Any(), expiry).Return("https://s3.test/put", nil)
		signer.EXPECT().PresignGet(ctx, gomock.Any(), expiry).Return("https://s3.test/get", nil)
		registry.EXPECT().Register(ctx, gomock.Any()).Return(errors.New("redis down"))

		result, err := svc.PresignImage(ctx, presign.ImageInput{Filename: "photo.jpg"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.UploadURL)
	})
}

func TestService_PresignCutout(t *testing.T) {
	t.Run("signs exact cutout key as png", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		svc := presign.NewService(signer, nil, presign.Config{Expiry: expiry}, zap.NewNop(), nil)

		ctx := context.Background()
		signer.EXPECT().PresignPut(ctx, "cutouts/abc_cutout.png", "image/png", expiry).Return("https://s3.test/put", nil)
		signer.EXPECT().PresignGet(ctx, "cutouts/abc_cutout.png", expiry).Return("https://s3.test/get", nil)

		pair, err := svc.PresignCutout(ctx, "abc")

		require.NoError(t, err)
		assert.Equal(t, "cutouts/abc_cutout.png", pair.Key)
		assert.Equal(t, "https://s3.test/put", pair.UploadURL)
		assert.Equal(t, "https://s3.test/get", pair.PublicURL)
	})

	t.Run("trusts unknown ids when registry check is off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		registry := mocks.NewMockFileRegistry(ctrl)
		svc := presign.NewService(signer, registry, presign.Config{Expiry: expiry}, zap.NewNop(), nil)

		ctx := context.Background()
		signer.EXPECT().PresignPut(ctx, gomock.Any(), gomock.Any(), expiry).Return("https://s3.test/put", nil)
		signer.EXPECT().PresignGet(ctx, gomock.Any(), expiry).Return("https://s3.test/get", nil)

		_, err := svc.PresignCutout(ctx, "never-issued")

		require.NoError(t, err)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		svc := presign.NewService(signer, nil, presign.Config{Expiry: expiry}, zap.NewNop(), nil)

		pair, err := svc.PresignCutout(context.Background(), "../images/x")

		assert.Nil(t, pair)
		assert.ErrorIs(t, err, domain.ErrInvalidFileID)
	})

	t.Run("rejects unknown id when required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		registry := mocks.NewMockFileRegistry(ctrl)
		metrics := observability.NewMetrics()
		svc := presign.NewService(signer, registry, presign.Config{Expiry: expiry, RequireKnownFileID: true}, zap.NewNop(), metrics)

		ctx := context.Background()
		registry.EXPECT().Exists(ctx, "abc").Return(false, nil)

		pair, err := svc.PresignCutout(ctx, "abc")

		assert.Nil(t, pair)
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
		assert.Equal(t, float64(1), metrics.PresignCount(presign.KindCutout, "rejected"))
	})

	t.Run("accepts known id when required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		registry := mocks.NewMockFileRegistry(ctrl)
		svc := presign.NewService(signer, registry, presign.Config{Expiry: expiry, RequireKnownFileID: true}, zap.NewNop(), nil)

		ctx := context.Background()
		registry.EXPECT().Exists(ctx, "abc").Return(true, nil)
		signer.EXPECT().PresignPut(ctx, "cutouts/abc_cutout.png", "image/png", expiry).Return("https://s3.test/put", nil)
		signer.EXPECT().PresignGet(ctx, "cutouts/abc_cutout.png", expiry).Return("https://s3.test/get", nil)

		_, err := svc.PresignCutout(ctx, "abc")

		require.NoError(t, err)
	})

	t.Run("registry lookup failure is an internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		registry := mocks.NewMockFileRegistry(ctrl)
		svc := presign.NewService(signer, registry, presign.Config{Expiry: expiry, RequireKnownFileID: true}, zap.NewNop(), nil)

		ctx := context.Background()
		registry.EXPECT().Exists(ctx, "abc").Return(false, errors.New("redis down"))

		_, err := svc.PresignCutout(ctx, "abc")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrFileNotFound)
		assert.NotErrorIs(t, err, domain.ErrPresignFailed)
	})

	t.Run("surfaces get signing failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		signer := mocks.NewMockURLSigner(ctrl)
		svc := presign.NewService(signer, nil, presign.Config{Expiry: expiry}, zap.NewNop(), nil)

		ctx := context.Background()
		signer.EXPECT().PresignPut(ctx, gomock.Any(), gomock.Any(), expiry).Return("https://s3.test/put", nil)
		signer.EXPECT().PresignGet(ctx, gomock.Any(), expiry).Return("", errors.New("endpoint resolution failed"))

		pair, err := svc.PresignCutout(ctx, "abc")

		assert.Nil(t, pair)
		assert.ErrorIs(t, err, domain.ErrPresignFailed)
	})
}
