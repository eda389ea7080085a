package main

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"strings"
	"testing"

	"github.com/jonathan/rephrase-master/internal/sharing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setShareFlags(t *testing.T, text, style, platform string) {
	t.Helper()
	shareText, shareStyle, sharePlatform = text, style, platform
	sharePro, shareNoTags, shareNoLink = false, false, false
	shareCopy, shareOpen, shareJSON = false, false, false
	t.Cleanup(func() {
		shareText, shareStyle, sharePlatform = "", "", "general"
		sharePro, shareNoTags, shareNoLink = false, false, false
		shareCopy, shareOpen, shareJSON = false, false, false
	})
}

func useFakeDesktop(t *testing.T) (*fakeClipboard, *fakeOpener) {
	t.Helper()
	cb := &fakeClipboard{supported: true}
	op := &fakeOpener{}
	prevCB, prevOp := clipboardImpl, openerImpl
	clipboardImpl, openerImpl = cb, op
	t.Cleanup(func() { clipboardImpl, openerImpl = prevCB, prevOp })
	return cb, op
}

func TestShareSnapshot(t *testing.T) {
	free := shareSnapshot(false, true, true)
	assert.False(t, free.IsPro)
	assert.True(t, free.EffectiveTags())
	assert.True(t, free.EffectiveLink())

	pro := shareSnapshot(true, true, false)
	assert.False(t, pro.EffectiveTags())
	assert.True(t, pro.EffectiveLink())
}

func TestRunShare_PrintsBoxes(t *testing.T) {
	setShareFlags(t, "お疲れ様でした。", "keigo", "general")
	stdout, _ := captureCommand(t, shareCmd)

	require.NoError(t, runShare(shareCmd, nil))

	out := stdout.String()
	assert.Contains(t, out, "ENTITLEMENT")
	assert.Contains(t, out, "SHARE: GENERAL")
	assert.Contains(t, out, "#RephraseMaster #敬語風")
	assert.Contains(t, out, "https://rephrase-master.app")
}

func TestRunShare_FreeTierWarnsOnRemoval(t *testing.T) {
	setShareFlags(t, "hi", "poet", "general")
	shareNoTags = true
	stdout, stderr := captureCommand(t, shareCmd)

	require.NoError(t, runShare(shareCmd, nil))

	assert.Contains(t, stderr.String(), "only be removed on Pro")
	assert.Contains(t, stdout.String(), "#詩人風")
}

func TestRunShare_JSONPro(t *testing.T) {
	setShareFlags(t, "hello", "gyaru", "twitter")
	sharePro, shareNoTags, shareNoLink, shareJSON = true, true, true, true
	stdout, _ := captureCommand(t, shareCmd)

	require.NoError(t, runShare(shareCmd, nil))

	var d sharing.Delivery
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &d))
	assert.Equal(t, "hello", d.Content)
	assert.Equal(t, sharing.MethodOpenURL, d.Method)
	assert.Equal(t, "https://twitter.com/intent/tweet?text=hello", d.URL)
}

func TestRunShare_CopyAndOpen(t *testing.T) {
	setShareFlags(t, "hi", "kansai", "line")
	shareCopy, shareOpen = true, true
	cb, op := useFakeDesktop(t)
	stdout, _ := captureCommand(t, shareCmd)

	require.NoError(t, runShare(shareCmd, nil))

	assert.True(t, strings.HasPrefix(cb.copied, "hi\n\n#RephraseMaster #関西弁風"))
	require.Len(t, op.opened, 1)
	assert.True(t, strings.HasPrefix(op.opened[0], "https://social-plugins.line.me/lineit/share?url="))
	assert.Contains(t, stdout.String(), "Copied to clipboard.")
}

func TestRunShare_UnknownPlatform(t *testing.T) {
	setShareFlags(t, "hi", "kansai", "myspace")
	captureCommand(t, shareCmd)

	err := runShare(shareCmd, nil)

	var platformErr *sharing.PlatformError
	require.ErrorAs(t, err, &platformErr)
	assert.Equal(t, "myspace", platformErr.Name)
}

func TestDeliver(t *testing.T) {
	linked := sharing.Delivery{Platform: sharing.Twitter, Content: "c", URL: "https://twitter.com/intent/tweet?text=c", Method: sharing.MethodOpenURL}
	clipboardOnly := sharing.Delivery{Platform: sharing.Instagram, Content: "c", Method: sharing.MethodClipboard}

	t.Run("nothing requested", func(t *testing.T) {
		var buf bytes.Buffer
		cb, op := &fakeClipboard{supported: true}, &fakeOpener{}
		require.NoError(t, deliver(&buf, linked, false, false, cb, op))
		assert.Empty(t, cb.copied)
		assert.Empty(t, op.opened)
		assert.Empty(t, buf.String())
	})

	t.Run("clipboard unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, deliver(&buf, clipboardOnly, true, false, &fakeClipboard{}, &fakeOpener{}))
		assert.Contains(t, buf.String(), "Clipboard is not available")
	})

	t.Run("clipboard error", func(t *testing.T) {
		var buf bytes.Buffer
		err := deliver(&buf, clipboardOnly, true, false, &fakeClipboard{err: errFake}, &fakeOpener{})
		assert.ErrorIs(t, err, errFake)
	})

	t.Run("open without link", func(t *testing.T) {
		var buf bytes.Buffer
		op := &fakeOpener{}
		require.NoError(t, deliver(&buf, clipboardOnly, false, true, &fakeClipboard{}, op))
		assert.Empty(t, op.opened)
		assert.Contains(t, buf.String(), "instagram has no share link")
	})

	t.Run("open error", func(t *testing.T) {
		var buf bytes.Buffer
		err := deliver(&buf, linked, false, true, &fakeClipboard{}, &fakeOpener{err: errFake})
		assert.ErrorIs(t, err, errFake)
	})
}

func TestShareCommand_MissingTextFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "share", "--style", "keigo")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"text\" not set")
}
