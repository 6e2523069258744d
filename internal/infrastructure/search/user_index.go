// Package search keeps a best-effort Elasticsearch mirror of the user table
// for fuzzy lookup. The relational store stays the source of truth; index
// failures are logged and never fail the originating request.
package search

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
)

type UserIndex struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewUserIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *UserIndex {
	return &UserIndex{ES: es, Index: index, Logger: logger}
}

// IndexUser upserts the user's searchable fields. Passwords and token state
// never reach the index.
func (x *UserIndex) IndexUser(ctx context.Context, u *entity.User) error {
	if x == nil || x.ES == nil || x.Index == "" {
		return nil
	}
	doc := map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"full_name":  u.FullName,
		"status":     u.Status,
		"avatar":     u.Avatar,
		"updated_at": u.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      x.Index,
		DocumentID: strconv.FormatInt(u.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		if x.Logger != nil {
			x.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && x.Logger != nil {
		x.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
	return nil
}

// DeleteUser drops a user document, e.g. after deactivation.
func (x *UserIndex) DeleteUser(ctx context.Context, id int64) error {
	if x == nil || x.ES == nil || x.Index == "" {
		return nil
	}
	req := esapi.DeleteRequest{Index: x.Index, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	return nil
}

// Search runs a multi_match over username, email and full_name.
func (x *UserIndex) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if x == nil || x.ES == nil || x.Index == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"username^2", "email^2", "full_name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := x.ES.Search(
		x.ES.Search.WithContext(c),
		x.ES.Search.WithIndex(x.Index),
		x.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
