package stream

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/nearindexer/arne/internal/app"
	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/lru"
	"github.com/nearindexer/arne/near"
)

var _ app.StreamService = (*Service)(nil)

// s3API is the part of the S3 client the stream reads with.
type s3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Service reads the lake bucket. It is stateless apart from a small block
// cache, which spares refetching a page that only partially made it into
// the database before a crash.
type Service struct {
	*app.StreamConfig

	s3     s3API
	bucket string

	blocks *lru.Cache[uint64, *near.BlockView]
}

func NewService(cfg *app.StreamConfig) *Service {
	return &Service{
		StreamConfig: cfg,
		s3:           cfg.Lake.S3Client(),
		bucket:       cfg.Lake.BucketName(),
		blocks:       lru.New[uint64, *near.BlockView](1024),
	}
}

// blockKey renders heights the way the lake lays them out, zero-padded to
// 12 digits so lexicographic order matches numeric order.
func blockKey(height uint64) string {
	return fmt.Sprintf("%012d", height)
}

func (s *Service) ListHeights(ctx context.Context, from uint64, limit int32) ([]uint64, error) {
	defer core.Timer(time.Now(), "ListHeights(%d, %d)", from, limit)

	list, err := s.s3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:       aws.String(s.bucket),
		Delimiter:    aws.String("/"),
		MaxKeys:      limit,
		RequestPayer: types.RequestPayerRequester,
		StartAfter:   aws.String(blockKey(from)),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list objects after %d", from)
	}

	var ret []uint64
	for _, p := range list.CommonPrefixes {
		if p.Prefix == nil {
			continue
		}
		h, err := strconv.ParseUint(strings.TrimSuffix(*p.Prefix, "/"), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse prefix '%s'", *p.Prefix)
		}
		ret = append(ret, h)
	}

	return ret, nil
}

func (s *Service) GetBlock(ctx context.Context, height uint64) (*near.BlockView, error) {
	if v, ok := s.blocks.Get(height); ok {
		return v, nil
	}

	defer core.Timer(time.Now(), "GetBlock(%d)", height)

	obj, err := s.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(blockKey(height) + "/block.json"),
		RequestPayer: types.RequestPayerRequester,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get block object %d", height)
	}
	defer obj.Body.Close()

	ret := new(near.BlockView)
	if err := json.NewDecoder(obj.Body).Decode(ret); err != nil {
		return nil, errors.Wrapf(err, "decode block %d", height)
	}
	if ret.Header.Height != height {
		return nil, fmt.Errorf("block object %d reports height %d", height, ret.Header.Height)
	}

	s.blocks.Put(height, ret)

	return ret, nil
}
