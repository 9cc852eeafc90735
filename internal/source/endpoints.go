package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/creatorscope/creatorscope/internal/model"
)

// Creator fetches and parses the creator profile. A missing record is
// surfaced as ErrCreatorNotFound.
func (c *Client) Creator(ctx context.Context, handle string) (*model.CreatorProfile, error) {
	data, err := c.fetch(ctx, "creator", c.creatorPath(handle, ""))
	if err != nil {
		return nil, err
	}

	var profile model.CreatorProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse creator profile: %w", err)
	}
	return &profile, nil
}

// TimeSeries fetches the creator interaction time series. Failures here are
// recoverable: the pipeline continues with an empty series.
func (c *Client) TimeSeries(ctx context.Context, handle string) ([]model.TimeSeriesPoint, error) {
	data, err := c.fetch(ctx, "time_series", c.creatorPath(handle, "/time-series"))
	if err != nil {
		return nil, err
	}

	var series []model.TimeSeriesPoint
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, fmt.Errorf("parse time series: %w", err)
	}
	return series, nil
}

// Posts fetches the creator's recent posts. Failures here are recoverable:
// the pipeline continues with an empty post list.
func (c *Client) Posts(ctx context.Context, handle string) ([]model.Post, error) {
	data, err := c.fetch(ctx, "posts", c.creatorPath(handle, "/posts"))
	if err != nil {
		return nil, err
	}

	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parse posts: %w", err)
	}
	return posts, nil
}
