package inference

import (
	"github.com/robert-malhotra/go-inference/logger"
)

// Default sampling dimensions for assembled datasets.
const (
	DimChain = "chain"
	DimDraw  = "draw"
)

// DatasetOption configures dataset construction and assembly.
type DatasetOption func(*datasetOptions)

type datasetOptions struct {
	coords         map[string][]any
	dims           map[string][]string
	defaultDims    []string
	defaultDimsSet bool
}

func defaultDatasetOptions() *datasetOptions {
	return &datasetOptions{
		coords: make(map[string][]any),
		dims:   make(map[string][]string),
	}
}

// sampleDims returns the leading dimension names assembled variables get
// when no explicit dims are given.
func (o *datasetOptions) sampleDims() []string {
	if o.defaultDimsSet {
		return o.defaultDims
	}
	return []string{DimChain, DimDraw}
}

// WithCoords assigns coordinate labels to a dimension. The number of labels
// must match the dimension's length. Labels must be integers, floats, or
// strings.
func WithCoords(dim string, values ...any) DatasetOption {
	return func(o *datasetOptions) {
		o.coords[dim] = values
	}
}

// WithDims sets the full dimension-name list for one variable during
// assembly, overriding the default sampling dims and auto-generated names.
func WithDims(variable string, dims ...string) DatasetOption {
	return func(o *datasetOptions) {
		o.dims[variable] = dims
	}
}

// WithDefaultDims overrides the leading dimensions assembled variables are
// given (chain and draw unless set). Passing no names assembles variables
// with only auto-generated per-variable dimensions, which suits constant or
// observed data that has no sampling axes.
func WithDefaultDims(dims ...string) DatasetOption {
	return func(o *datasetOptions) {
		o.defaultDims = dims
		o.defaultDimsSet = true
	}
}

// SelOption configures a container-wide selection.
type SelOption func(*selOptions)

type selOptions struct {
	log     logger.Logger
	handler func(MissingDimensionWarning)
}

func defaultSelOptions() *selOptions {
	return &selOptions{log: logger.Default()}
}

// warn routes a warning to the handler if one is set, else to the logger.
func (o *selOptions) warn(w MissingDimensionWarning) {
	if o.handler != nil {
		o.handler(w)
		return
	}
	o.log.Warnf("%s", w)
}

// WithLogger sets the logger that receives missing-dimension warnings.
// The default logs to stderr.
func WithLogger(l logger.Logger) SelOption {
	return func(o *selOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithWarningHandler routes missing-dimension warnings to a callback instead
// of the logger.
func WithWarningHandler(h func(MissingDimensionWarning)) SelOption {
	return func(o *selOptions) {
		o.handler = h
	}
}
