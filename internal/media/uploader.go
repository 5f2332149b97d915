// Package media copies channel-hosted attachments into R2-compatible object
// storage and returns their public URLs.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/config"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
)

// s3API is the slice of the S3 client the uploader uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader fetches media from the messaging provider and stores it in a
// bucket. Provider URLs are protected by basic auth when credentials are set.
type Uploader struct {
	client        s3API
	httpClient    *http.Client
	bucket        string
	publicBaseURL string
	authUser      string
	authPass      string
}

// New builds an Uploader against the configured R2 endpoint.
func New(ctx context.Context, mediaCfg config.MediaConfig, twilioCfg config.TwilioConfig) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(mediaCfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			mediaCfg.AccessKeyID, mediaCfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(mediaCfg.Endpoint)
		o.UsePathStyle = true
	})

	return &Uploader{
		client:        client,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		bucket:        mediaCfg.Bucket,
		publicBaseURL: strings.TrimSuffix(mediaCfg.PublicBaseURL, "/"),
		authUser:      twilioCfg.AccountSID,
		authPass:      twilioCfg.AuthToken,
	}, nil
}

// Upload downloads the referenced media and writes it to the bucket under a
// fresh key. It returns the public URL of the stored object.
func (u *Uploader) Upload(ctx context.Context, ref listing.MediaRef) (string, error) {
	body, err := u.fetch(ctx, ref.URL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	payload, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read media body: %w", err)
	}

	key := fmt.Sprintf("media_%s%s", uuid.NewString(), extensionFor(ref.ContentType))
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(ref.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("store media object: %w", err)
	}
	return u.publicBaseURL + "/" + key, nil
}

func (u *Uploader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build media request: %w", err)
	}
	if u.authUser != "" {
		req.SetBasicAuth(u.authUser, u.authPass)
	}
	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch media: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// extensionFor maps the media content types the provider sends to file
// extensions. Unknown types fall back to .bin.
func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "application/pdf":
		return ".pdf"
	case "video/mp4":
		return ".mp4"
	}
	return ".bin"
}
