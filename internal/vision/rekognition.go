package vision

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"picprompt/internal/domain"
)

const rekognitionProviderName = "rekognition"

// labelsAPI is the slice of the Rekognition client this package calls.
type labelsAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

type RekognitionOptions struct {
	MaxLabels     int
	MinConfidence float64
}

// RekognitionDetector detects labels with AWS Rekognition using inline image
// bytes; nothing is stored on the AWS side.
type RekognitionDetector struct {
	client        labelsAPI
	maxLabels     int32
	minConfidence float32
}

func NewRekognitionDetector(client *rekognition.Client, opts RekognitionOptions) *RekognitionDetector {
	return newRekognitionDetector(client, opts)
}

func newRekognitionDetector(client labelsAPI, opts RekognitionOptions) *RekognitionDetector {
	if opts.MaxLabels <= 0 {
		opts.MaxLabels = DefaultMaxLabels
	}
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = DefaultMinConfidence
	}
	return &RekognitionDetector{
		client:        client,
		maxLabels:     int32(opts.MaxLabels),
		minConfidence: float32(opts.MinConfidence),
	}
}

func (d *RekognitionDetector) DetectLabels(ctx context.Context, image domain.Image) ([]domain.Label, error) {
	if d == nil || d.client == nil {
		return nil, domain.NewServiceError(rekognitionProviderName, errors.New("client not configured"))
	}
	if len(image.Data) == 0 {
		return nil, domain.NewValidationError("image", "no bytes to analyze")
	}

	out, err := d.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image.Data},
		MaxLabels:     aws.Int32(d.maxLabels),
		MinConfidence: aws.Float32(d.minConfidence),
	})
	if err != nil {
		return nil, domain.NewServiceError(rekognitionProviderName, err)
	}
	return fromRekognitionLabels(out.Labels), nil
}

// fromRekognitionLabels maps SDK labels onto the domain type, rescaling
// confidence from 0..100 to 0..1.
func fromRekognitionLabels(labels []types.Label) []domain.Label {
	result := make([]domain.Label, 0, len(labels))
	for _, l := range labels {
		if l.Name == nil {
			continue
		}
		var confidence float64
		if l.Confidence != nil {
			confidence = float64(*l.Confidence) / 100
		}
		result = append(result, domain.Label{Name: *l.Name, Confidence: confidence})
	}
	return result
}

var _ Detector = (*RekognitionDetector)(nil)
