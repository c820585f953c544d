package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/bowlsignup/internal/logging"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
	sc "github.com/dmitrijs2005/bowlsignup/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Lister is the part of BowlerService the exporter needs.
type Lister interface {
	List(ctx context.Context) ([]models.Bowler, error)
}

// ExportService writes the bowler list as CSV to object storage and hands
// back a time-limited download link.
type ExportService struct {
	bowlers Lister
	config  *sc.Config
	logger  logging.Logger
	now     func() time.Time
}

func NewExportService(bowlers Lister, config *sc.Config, logger logging.Logger) *ExportService {
	return &ExportService{
		bowlers: bowlers,
		config:  config,
		logger:  logger.With("module", "export"),
		now:     time.Now,
	}
}

// CSVHeader is the first row of every export.
var CSVHeader = []string{"id", "name", "email", "phone", "opted_in", "created_at"}

// WriteCSV encodes list with CSVHeader as the first row.
func WriteCSV(buf *bytes.Buffer, list []models.Bowler) error {
	w := csv.NewWriter(buf)
	if err := w.Write(CSVHeader); err != nil {
		return err
	}
	for _, b := range list {
		row := []string{
			b.ID,
			b.Name,
			b.Email,
			b.Phone,
			strconv.FormatBool(b.OptedIn),
			b.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *ExportService) storageKey() string {
	d := s.now()
	return fmt.Sprintf("exports/%d/%d/%d/%v.csv", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// Export uploads the current list and returns a presigned GET URL for it.
func (s *ExportService) Export(ctx context.Context) (string, error) {
	list, err := s.bowlers.List(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, list); err != nil {
		return "", fmt.Errorf("error encoding csv: %w", err)
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return "", fmt.Errorf("error configuring storage: %w", err)
	}

	bucket := s.config.S3Bucket
	key := s.storageKey()

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading export: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.ExportLinkValidityDuration))
	if err != nil {
		return "", fmt.Errorf("error presigning export: %w", err)
	}

	s.logger.Info(ctx, "export created", "key", key, "rows", len(list))
	return req.URL, nil
}
