package outcome

import "testing"

func TestCountMessage(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, "Se obtuvieron 0 reportes"},
		{1, "Se obtuvo 1 reporte"},
		{2, "Se obtuvieron 2 reportes"},
	}
	for _, tc := range cases {
		if got := CountMessage(tc.count, "reporte", "reportes"); got != tc.want {
			t.Fatalf("count %d: expected %q got %q", tc.count, tc.want, got)
		}
	}
}

func TestOutcomeBuilders(t *testing.T) {
	ok := Succeed([]int{1}, "listo")
	if !ok.Success || ok.Code != CodeSuccess || len(ok.Data) != 1 {
		t.Fatalf("unexpected success outcome %+v", ok)
	}
	deleted := Deleted[struct{}]("eliminado")
	if !deleted.Success || deleted.Code != CodeDeleted || !deleted.Code.IsPositive() {
		t.Fatalf("unexpected deleted outcome %+v", deleted)
	}
	failed := FromResult[*int](Result{Code: CodeNetworkError, Message: "sin conexión"})
	if failed.Success || failed.Data != nil || failed.Message != "sin conexión" || failed.Code.IsPositive() {
		t.Fatalf("unexpected failed outcome %+v", failed)
	}
}
