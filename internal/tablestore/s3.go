package tablestore

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectAPI é o subconjunto do cliente S3 usado pelo store.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
	AccessKey string
	SecretKey string
	PathStyle bool
}

// NewS3Client monta o cliente com credenciais estáticas. Endpoint vazio usa a AWS.
func NewS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// S3 guarda cada tabela como um objeto CSV <prefix>/<tabela>.csv.
type S3 struct {
	api    ObjectAPI
	bucket string
	prefix string

	// append é leitura+escrita do objeto inteiro
	mu sync.Mutex
}

func NewS3(api ObjectAPI, bucket, prefix string) *S3 {
	return &S3{api: api, bucket: bucket, prefix: prefix}
}

func (s *S3) key(name string) string {
	return path.Join(s.prefix, name+".csv")
}

func (s *S3) ReadTable(ctx context.Context, name string) ([]Record, error) {
	header, rows, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}
	return toRecords(header, rows), nil
}

func (s *S3) AppendRow(ctx context.Context, name string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	header, rows, err := s.load(ctx, name)
	if err != nil {
		return err
	}
	return s.put(ctx, name, header, append(rows, copyRow(values)))
}

func (s *S3) ClearAndWrite(ctx context.Context, name string, header []string, rows [][]string) error {
	if _, err := HeaderOf(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(ctx, name, header, rows)
}

// load cria o objeto com o cabeçalho quando ainda não existe.
func (s *S3) load(ctx context.Context, name string) ([]string, [][]string, error) {
	defHeader, err := HeaderOf(name)
	if err != nil {
		return nil, nil, err
	}

	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			if err := s.put(ctx, name, defHeader, nil); err != nil {
				return nil, nil, err
			}
			return defHeader, nil, nil
		}
		return nil, nil, fmt.Errorf("get %s: %w", s.key(name), err)
	}
	defer out.Body.Close()

	header, rows, err := decodeCSV(out.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", s.key(name), err)
	}
	if header == nil {
		header = defHeader
	}
	return header, rows, nil
}

func (s *S3) put(ctx context.Context, name string, header []string, rows [][]string) error {
	body, err := encodeCSV(header, rows)
	if err != nil {
		return err
	}

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(name)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", s.key(name), err)
	}
	return nil
}

func encodeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeCSV(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

var _ Store = (*S3)(nil)
