package lake

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nearindexer/arne/near"
)

// DefaultRegion is where the chain publishes its lake buckets.
const DefaultRegion = "eu-central-1"

// Config describes the bucket a stream reads block objects from. Bucket,
// Region and Endpoint are overrides for self-hosted lakes, the chain
// defaults serve everyone else.
type Config struct {
	ChainID near.ChainID

	AccessKeyID     string
	SecretAccessKey string

	Bucket   string
	Region   string
	Endpoint string

	// StartBlockHeight is where a freshly started stream begins. Any value
	// goes, zero and heights past the current tip included, the listing
	// just comes up empty until the chain catches up.
	StartBlockHeight uint64
}

func (c *Config) BucketName() string {
	if c.Bucket != "" {
		return c.Bucket
	}
	return c.ChainID.LakeBucket()
}

func (c *Config) RegionName() string {
	if c.Region != "" {
		return c.Region
	}
	return DefaultRegion
}

// AWSConfig keeps credentials static, a lake reader never picks them up
// from the ambient environment.
func (c *Config) AWSConfig() aws.Config {
	return aws.Config{
		Region:      c.RegionName(),
		Credentials: credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
	}
}

// S3Client builds the client the stream service reads with. A custom
// endpoint implies path-style addressing.
func (c *Config) S3Client() *s3.Client {
	return s3.NewFromConfig(c.AWSConfig(), func(o *s3.Options) {
		if c.Endpoint != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(c.Endpoint)
			o.UsePathStyle = true
		}
	})
}
