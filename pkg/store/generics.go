package store

import "context"

// QueryAs is Query with a typed fetcher and result.
func QueryAs[T any](s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, State) {
	st := s.Query(key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})

	data, _ := DataAs[T](st)
	return data, st
}

// FetchAs is Fetch with a typed fetcher and result.
func FetchAs[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	data, err := s.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := data.(T)
	if !ok {
		return zero, nil
	}

	return typed, nil
}

// PatchAs is Patch with a typed update function. Data of another type
// is left untouched.
func PatchAs[T any](s *Store, key Key, fn func(T) T) bool {
	return s.Patch(key, func(data any) any {
		typed, ok := data.(T)
		if !ok {
			return data
		}

		return fn(typed)
	})
}

// DataAs returns the data of a state as T.
func DataAs[T any](st State) (T, bool) {
	var zero T
	if !st.HasData {
		return zero, false
	}

	typed, ok := st.Data.(T)
	return typed, ok
}
