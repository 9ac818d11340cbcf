package s3

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"

	"video-catalog/cmd/config"
)

// Presigner turns stored object keys into time-limited GET URLs.
type Presigner struct {
	client *awss3.S3
	bucket string
	ttl    time.Duration
}

func NewPresigner(cfg config.AWS) (*Presigner, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &Presigner{
		client: awss3.New(sess),
		bucket: cfg.S3Bucket,
		ttl:    cfg.PresignTTL,
	}, nil
}

// Resolve leaves empty references and absolute URLs alone and presigns bare
// object keys. On failure the reference is returned unchanged.
func (p *Presigner) Resolve(ref string) string {
	if ref == "" || isAbsoluteURL(ref) {
		return ref
	}

	req, _ := p.client.GetObjectRequest(&awss3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(strings.TrimPrefix(ref, "/")),
	})
	signed, err := req.Presign(p.ttl)
	if err != nil {
		log.Printf("Failed to presign s3 object %s: %v", ref, err)
		return ref
	}
	return signed
}

func isAbsoluteURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != "" && u.Host != ""
}
