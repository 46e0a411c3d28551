package serialize

import (
	"fmt"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the binary manifest.
//
//	message Report { string algorithm = 1; repeated Result results = 2; }
//	message Result {
//	  string path = 1; string algorithm = 2; fixed32 checksum = 3;
//	  int64 size = 4; int64 segments = 5;
//	}
const (
	reportAlgorithm protowire.Number = 1
	reportResults   protowire.Number = 2

	resultPath      protowire.Number = 1
	resultAlgorithm protowire.Number = 2
	resultChecksum  protowire.Number = 3
	resultSize      protowire.Number = 4
	resultSegments  protowire.Number = 5
)

// MarshalProto encodes report in protobuf wire format.
func MarshalProto(report *domain.Report) []byte {
	var b []byte
	if report.Algorithm != "" {
		b = protowire.AppendTag(b, reportAlgorithm, protowire.BytesType)
		b = protowire.AppendString(b, report.Algorithm)
	}
	for _, r := range report.Results {
		b = protowire.AppendTag(b, reportResults, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalResult(r))
	}
	return b
}

func marshalResult(r *domain.Result) []byte {
	var b []byte
	if r.Path != "" {
		b = protowire.AppendTag(b, resultPath, protowire.BytesType)
		b = protowire.AppendString(b, r.Path)
	}
	if r.Algorithm != "" {
		b = protowire.AppendTag(b, resultAlgorithm, protowire.BytesType)
		b = protowire.AppendString(b, r.Algorithm)
	}
	b = protowire.AppendTag(b, resultChecksum, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, r.Checksum)
	b = protowire.AppendTag(b, resultSize, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Size))
	b = protowire.AppendTag(b, resultSegments, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Segments))
	return b
}

// UnmarshalProto decodes a report written by MarshalProto. Unknown fields are
// skipped.
func UnmarshalProto(b []byte) (*domain.Report, error) {
	report := &domain.Report{}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("report tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == reportAlgorithm && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("report algorithm: %w", protowire.ParseError(n))
			}
			report.Algorithm = v
			b = b[n:]

		case num == reportResults && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("report result: %w", protowire.ParseError(n))
			}
			r, err := unmarshalResult(v)
			if err != nil {
				return nil, err
			}
			report.Results = append(report.Results, r)
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("report field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	return report, nil
}

func unmarshalResult(b []byte) (*domain.Result, error) {
	r := &domain.Result{}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("result tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == resultPath && typ == protowire.BytesType:
			r.Path, n = protowire.ConsumeString(b)
		case num == resultAlgorithm && typ == protowire.BytesType:
			r.Algorithm, n = protowire.ConsumeString(b)
		case num == resultChecksum && typ == protowire.Fixed32Type:
			r.Checksum, n = protowire.ConsumeFixed32(b)
		case num == resultSize && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			r.Size = int64(v)
		case num == resultSegments && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			r.Segments = int(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}

		if n < 0 {
			return nil, fmt.Errorf("result field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}

	return r, nil
}
