package vk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Message is one inbound user message from the group Long Poll stream. The
// stream only carries messages addressed to the group, so no extra "to me"
// check is needed before handing it to the engine.
type Message struct {
	FromID int64  `json:"from_id"`
	PeerID int64  `json:"peer_id"`
	Text   string `json:"text"`
}

type longPollServer struct {
	Key    string `json:"key"`
	Server string `json:"server"`
	TS     string `json:"ts"`
}

func (c *Client) longPollServer(ctx context.Context, groupID int64) (longPollServer, error) {
	params := url.Values{}
	params.Set("group_id", strconv.FormatInt(groupID, 10))
	var srv longPollServer
	err := c.call(ctx, "groups.getLongPollServer", params, &srv)
	return srv, err
}

// Listen runs the Bots Long Poll loop, invoking handle for every new message,
// one at a time. On an expired key or lost history it re-requests the server
// and keeps going; transient network errors back off for a second.
func (c *Client) Listen(ctx context.Context, groupID int64, handle func(Message)) error {
	srv, err := c.longPollServer(ctx, groupID)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		out, err := c.check(ctx, srv)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			time.Sleep(1 * time.Second)
			continue
		}

		switch out.Failed {
		case 0:
			srv.TS = out.TS
		case 1:
			// история событий устарела
			srv.TS = out.TS
			continue
		default: // 2, 3: ключ протух — запрашиваем сервер заново
			if srv, err = c.longPollServer(ctx, groupID); err != nil {
				return err
			}
			continue
		}

		for _, upd := range out.Updates {
			if upd.Type != "message_new" {
				continue
			}
			var obj struct {
				Message Message `json:"message"`
			}
			if err := json.Unmarshal(upd.Object, &obj); err != nil {
				continue
			}
			handle(obj.Message)
		}
	}
}

type checkResponse struct {
	Failed  int    `json:"failed"`
	TS      string `json:"ts"`
	Updates []struct {
		Type   string          `json:"type"`
		Object json.RawMessage `json:"object"`
	} `json:"updates"`
}

func (c *Client) check(ctx context.Context, srv longPollServer) (checkResponse, error) {
	q := url.Values{}
	q.Set("act", "a_check")
	q.Set("key", srv.Key)
	q.Set("ts", srv.TS)
	q.Set("wait", "25")

	req, err := http.NewRequestWithContext(ctx, "GET", srv.Server+"?"+q.Encode(), nil)
	if err != nil {
		return checkResponse{}, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return checkResponse{}, err
	}
	defer resp.Body.Close()

	var out checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return checkResponse{}, err
	}
	return out, nil
}
