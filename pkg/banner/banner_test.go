package banner

import (
	"bytes"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, "hi")

	want := "******\n" +
		"*    *\n" +
		"* hi *\n" +
		"*    *\n" +
		"******\n"
	check.Equal(t, want, buf.String())
}

func TestFprint_EmptyMessageRendersBareBox(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, "")

	want := "****\n" +
		"*  *\n" +
		"*  *\n" +
		"*  *\n" +
		"****\n"
	check.Equal(t, want, buf.String())
}

func TestFprint_CentersLongerMessage(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, "Welcome")

	want := "***********\n" +
		"*         *\n" +
		"* Welcome *\n" +
		"*         *\n" +
		"***********\n"
	check.Equal(t, want, buf.String())
}
