package shopify

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"customerlist/internal/model"
)

// PageSize is the number of customers requested per call.
const PageSize = 10

const customersQuery = `{
  customers(first: 10) {
    edges {
      node {
        id
        firstName
        lastName
        email
        createdAt
      }
    }
  }
}`

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type customersResponse struct {
	Data *struct {
		Customers *struct {
			Edges *[]customerEdge `json:"edges"`
		} `json:"customers"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type customerEdge struct {
	Node *customerNode `json:"node"`
}

// Pointers distinguish absent or null fields from empty strings.
type customerNode struct {
	ID        *string `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	CreatedAt *string `json:"createdAt"`
}

// decodeCustomers parses a GraphQL response body and maps every node, failing
// on the first missing or mistyped field.
func decodeCustomers(r io.Reader) ([]model.Customer, error) {
	var resp customersResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, upstreamErr(kindDecode, err)
	}
	if len(resp.Errors) > 0 {
		return nil, upstreamErrf(kindGraphQL, "%s", resp.Errors[0].Message)
	}
	if resp.Data == nil || resp.Data.Customers == nil || resp.Data.Customers.Edges == nil {
		return nil, upstreamErr(kindSchema, errors.New("missing data.customers.edges"))
	}

	edges := *resp.Data.Customers.Edges
	if len(edges) > PageSize {
		return nil, upstreamErrf(kindSchema, "got %d customers, requested at most %d", len(edges), PageSize)
	}

	out := make([]model.Customer, 0, len(edges))
	seen := make(map[string]struct{}, len(edges))
	for i, edge := range edges {
		c, err := mapNode(edge.Node)
		if err != nil {
			return nil, upstreamErrf(kindSchema, "edge %d: %v", i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, upstreamErrf(kindSchema, "edge %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

func mapNode(n *customerNode) (model.Customer, error) {
	if n == nil {
		return model.Customer{}, errors.New("missing node")
	}
	if n.ID == nil || *n.ID == "" {
		return model.Customer{}, errors.New("missing id")
	}
	if n.Email == nil {
		return model.Customer{}, errors.New("missing email")
	}
	if n.CreatedAt == nil {
		return model.Customer{}, errors.New("missing createdAt")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, *n.CreatedAt)
	if err != nil {
		return model.Customer{}, errors.New("invalid createdAt")
	}

	return model.Customer{
		ID:        *n.ID,
		FirstName: deref(n.FirstName),
		LastName:  deref(n.LastName),
		Email:     *n.Email,
		CreatedAt: createdAt,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
