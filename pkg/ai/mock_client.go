// pkg/ai/mock_client.go

package ai

import "context"

type mockClient struct{}

// NewMock returns a keyless stand-in used when no provider is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Complete(ctx context.Context, system, user string) (string, error) {
	return "ご質問ありがとうございます。担当者より改めてご連絡いたします。（mock）", nil
}
