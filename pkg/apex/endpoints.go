package apex

import (
	"fmt"

	"github.com/google/go-querystring/query"
)

const (
	bridgeVersion      = 5
	mapRotationVersion = 2
)

type bridgeQuery struct {
	Version  int      `url:"version"`
	Platform Platform `url:"platform"`
	Player   string   `url:"player"`
	Auth     string   `url:"auth"`
}

type gamesQuery struct {
	Auth string `url:"auth"`
	UID  string `url:"uid"`
}

type nameToUIDQuery struct {
	Player   string   `url:"player"`
	Platform Platform `url:"platform"`
	Auth     string   `url:"auth"`
}

type mapRotationQuery struct {
	Version int    `url:"version"`
	Auth    string `url:"auth"`
}

// endpoint names a resource and knows how to build its URL.
type endpoint struct {
	name     string
	path     string
	params   any
	required []string
}

func (c *Client) buildURL(ep endpoint) (string, error) {
	v, err := query.Values(ep.params)
	if err != nil {
		return "", fmt.Errorf("encode %s query: %w", ep.name, err)
	}
	return c.baseURL + ep.path + "?" + v.Encode(), nil
}

func (c *Client) userEndpoint(player, apiKey string) endpoint {
	return endpoint{
		name:     "user",
		path:     "/bridge",
		params:   bridgeQuery{Version: bridgeVersion, Platform: c.platform, Player: player, Auth: apiKey},
		required: []string{"global"},
	}
}

func (c *Client) gamesEndpoint(uid, apiKey string) endpoint {
	return endpoint{
		name:   "recent games",
		path:   "/games",
		params: gamesQuery{Auth: apiKey, UID: uid},
	}
}

func (c *Client) nameToUIDEndpoint(player, apiKey string) endpoint {
	return endpoint{
		name:     "uid lookup",
		path:     "/nametouid",
		params:   nameToUIDQuery{Player: player, Platform: c.platform, Auth: apiKey},
		required: []string{"uid"},
	}
}

func (c *Client) mapRotationEndpoint(apiKey string) endpoint {
	return endpoint{
		name:     "map rotation",
		path:     "/maprotation",
		params:   mapRotationQuery{Version: mapRotationVersion, Auth: apiKey},
		required: []string{"battle_royale"},
	}
}
