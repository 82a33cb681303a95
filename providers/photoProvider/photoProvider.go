package photoprovider

import (
	"context"
	"fmt"

	"assettag/models"
	"assettag/providers"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

type firebasePhotoStorage struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewFirebasePhotoProvider stores photos in the configured Firebase Storage
// bucket and hands back the public object URL.
func NewFirebasePhotoProvider(ctx context.Context, credentialsFile, bucketName string) (providers.PhotoStorageProvider, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opt)
	if err != nil {
		return nil, err
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, err
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, err
	}

	return &firebasePhotoStorage{bucket: bucket, bucketName: bucketName}, nil
}

func (f *firebasePhotoStorage) StorePhoto(ctx context.Context, assetNumber string, slot models.PhotoSlot, data []byte) (string, error) {
	objectName := fmt.Sprintf("photos/%s_%s.jpg", assetNumber, slot)

	w := f.bucket.Object(objectName).NewWriter(ctx)
	w.ContentType = "image/jpeg"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write photo object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize photo object: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", f.bucketName, objectName), nil
}

type staticURLPhotoStorage struct {
	baseURL string
}

// NewStaticURLProvider is the no-bucket fallback for local development. It
// only fabricates the stable URL an upload would have produced.
func NewStaticURLProvider(baseURL string) providers.PhotoStorageProvider {
	return &staticURLPhotoStorage{baseURL: baseURL}
}

func (s *staticURLPhotoStorage) StorePhoto(_ context.Context, assetNumber string, slot models.PhotoSlot, _ []byte) (string, error) {
	return fmt.Sprintf("%s/%s_%s.jpg", s.baseURL, assetNumber, slot), nil
}
