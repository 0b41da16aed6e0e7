package notion

import (
	"context"
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"github.com/takak2166/chapterseg/internal/config"
	"github.com/takak2166/chapterseg/internal/logger"
	"github.com/takak2166/chapterseg/internal/models"
)

// maxChildrenPerRequest is the Notion limit on children sent in one request
const maxChildrenPerRequest = 100

// Client publishes chapter content as Notion pages
type Client struct {
	client     NotionClient
	parentID   notionapi.PageID
	parentType notionapi.ParentType
	retries    int
	retryDelay time.Duration
}

// New creates a new Notion client from the configuration
func New(cfg *config.Config) (*Client, error) {
	if err := cfg.RequireNotion(); err != nil {
		return nil, err
	}

	retries := cfg.NotionRetries
	if retries <= 0 {
		retries = 3
	}
	notionClient := notionapi.NewClient(notionapi.Token(cfg.NotionAPIKey))
	return NewWithClient(newNotionClientAdapter(notionClient), cfg.NotionParentPageID, retries, 1*time.Second), nil
}

// NewWithClient creates a Client on top of an existing NotionClient
func NewWithClient(nc NotionClient, parentPageID string, retries int, retryDelay time.Duration) *Client {
	if retries <= 0 {
		retries = 1
	}
	return &Client{
		client:     nc,
		parentID:   notionapi.PageID(parentPageID),
		parentType: "page_id",
		retries:    retries,
		retryDelay: retryDelay,
	}
}

// PublishChapter creates a page titled title holding the given blocks and
// returns its id. Blocks beyond the first request are appended in batches.
// If an append fails the id of the incomplete page is returned with the error.
func (c *Client) PublishChapter(ctx context.Context, title string, blocks []models.Block) (string, error) {
	if title == "" {
		return "", fmt.Errorf("page title is empty")
	}

	children := ConvertBlocks(blocks)
	logger.Debug("Creating Notion page", logger.Fields{
		"title":        title,
		"blocks_count": len(children),
	})

	first := children
	if len(first) > maxChildrenPerRequest {
		first = children[:maxChildrenPerRequest]
	}

	pageParams := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:   c.parentType,
			PageID: c.parentID,
		},
		Properties: notionapi.Properties{
			"title": notionapi.TitleProperty{
				Title: richText(title),
			},
		},
		Children: first,
	}

	// Retry page creation with a fixed delay
	var page *notionapi.Page
	var err error

	for i := 0; i < c.retries; i++ {
		page, err = c.client.Page().Create(ctx, pageParams)
		if err == nil {
			break
		}
		logger.Warn("Notion page creation failed", logger.Fields{
			"title":   title,
			"attempt": i + 1,
			"error":   err.Error(),
		})
		if i < c.retries-1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}
	}

	if err != nil {
		return "", fmt.Errorf("failed to create page after %d attempts: %w", c.retries, err)
	}

	for start := len(first); start < len(children); start += maxChildrenPerRequest {
		end := start + maxChildrenPerRequest
		if end > len(children) {
			end = len(children)
		}
		_, err := c.client.Block().AppendChildren(ctx, notionapi.BlockID(page.ID), &notionapi.AppendBlockChildrenRequest{
			Children: children[start:end],
		})
		if err != nil {
			logger.Warn("Notion page left incomplete", logger.Fields{
				"title":   title,
				"page_id": string(page.ID),
				"written": start,
				"total":   len(children),
			})
			return string(page.ID), fmt.Errorf("page %s: failed to append blocks %d-%d: %w", page.ID, start, end, err)
		}
	}

	logger.Info("Successfully created Notion page", logger.Fields{
		"title":        title,
		"page_id":      string(page.ID),
		"blocks_count": len(children),
	})

	return string(page.ID), nil
}
