package service

import (
	"github.com/MKhiriev/go-resource-client/internal/adapter"
	"github.com/MKhiriev/go-resource-client/internal/logger"
)

type ClientServices struct {
	FeedService FeedService
	FeedWatcher FeedWatcher
}

func NewClientServices(client adapter.ResourceClient, logger *logger.Logger) *ClientServices {
	feedSvc := NewFeedService(client, logger)

	return &ClientServices{
		FeedService: feedSvc,
		FeedWatcher: NewFeedWatcher(feedSvc),
	}
}
