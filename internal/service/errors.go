package service

import "fmt"

func errExpected(what string, got any) error {
	return fmt.Errorf("expected %s, got %T", what, got)
}
