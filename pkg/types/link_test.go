package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkStatus_String(t *testing.T) {
	tests := []struct {
		status LinkStatus
		kind   string
		text   string
	}{
		{StatusSrcUnexists(), "src_unexists", "link does not exist"},
		{StatusDstUnexists(), "dst_unexists", "target does not exist"},
		{StatusExists(), "exists", "linked"},
		{StatusUnexpected("/elsewhere"), "unexpected", "found /elsewhere"},
		{LinkStatus{Kind: LinkStatusKind(42)}, "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.status.Kind.String())
			assert.Equal(t, tt.text, tt.status.String())
		})
	}
}

func TestLinkStatus_FoundOnlyForUnexpected(t *testing.T) {
	assert.Empty(t, StatusExists().Found)
	assert.Equal(t, "/x", StatusUnexpected("/x").Found)
}

func TestLink_JSON(t *testing.T) {
	link := Link{Src: "/h/.vimrc", Dst: "/d/vim/vimrc", Status: StatusUnexpected("/other")}

	data, err := json.Marshal(link)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"src":"/h/.vimrc","dst":"/d/vim/vimrc","status":{"kind":"unexpected","found":"/other"}}`,
		string(data))

	data, err = json.Marshal(StatusExists())
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"exists"}`, string(data))
}
