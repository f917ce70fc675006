// Package domain defines the core pipeline types.
//
// This package contains the data model shared by every stage: records as
// loaded, tokens as extracted, and the aggregated word statistics handed to
// rendering. No implementation code - just the shapes data takes as it moves
// forward through the pipeline.
package domain
