package workos

import "net/http"

// ClassifyResponse converts a raw response into a typed outcome. It is the
// single decision procedure every operation runs after Send:
//
//  1. 401 fails with an unauthorized error. The body is never read, so the
//     signal is uniform across endpoints regardless of body shape; the
//     unread body is released.
//  2. 2xx passes the response through unchanged for deserialization.
//  3. Anything else fails with a generic API error carrying the status and
//     the raw body text.
//
// A response must be classified exactly once; classification may consume the
// body on the error path.
func ClassifyResponse(res Response) (Response, error) {
	status := res.Status()

	if status == http.StatusUnauthorized {
		DiscardResponse(res)
		return nil, NewUnauthorizedError()
	}

	if status >= 200 && status < 300 {
		return res, nil
	}

	body, err := res.Text()
	if err != nil {
		body = "failed to read response body"
	}
	return nil, NewAPIError(status, body)
}
