// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// TranslationMatrix4x3 is a semantic view backed by M34: identity in the
// upper-left 3x3 block, translation carried in the last row.
type TranslationMatrix4x3 struct {
	Storage M34
}

// NewTranslationMatrix4x3 returns the identity translation (no movement).
func NewTranslationMatrix4x3() *TranslationMatrix4x3 {
	return &TranslationMatrix4x3{Storage: *NewM34I()}
}

// SetV sets t to translate by the given vector. The updated t is returned.
func (t *TranslationMatrix4x3) SetV(v *V3) *TranslationMatrix4x3 {
	t.Storage = *NewM34I()
	t.Storage.SetTranslation(v.X, v.Y, v.Z)
	return t
}

// Vector returns the translation as a vector.
func (t *TranslationMatrix4x3) Vector(out *V3) *V3 {
	out.X, out.Y, out.Z = t.Storage.Translation()
	return out
}

// Verify checks that t's 3x3 block is identity, which is the only
// invariant a translation matrix must hold at construction.
func (t *TranslationMatrix4x3) Verify() bool {
	m3 := &M3{}
	t.Storage.Block3x3(m3)
	return m3.Aeq(M3I)
}

// TranslationMatrix4x4 is the same semantic view backed by the full
// projective M4 storage.
type TranslationMatrix4x4 struct {
	Storage M4
}

// NewTranslationMatrix4x4 returns the identity translation.
func NewTranslationMatrix4x4() *TranslationMatrix4x4 {
	return &TranslationMatrix4x4{Storage: *NewM4I()}
}

// SetV sets t to translate by the given vector. The updated t is returned.
func (t *TranslationMatrix4x4) SetV(v *V3) *TranslationMatrix4x4 {
	t.Storage = *NewM4I()
	t.Storage.Wx, t.Storage.Wy, t.Storage.Wz = v.X, v.Y, v.Z
	return t
}

// Vector returns the translation as a vector.
func (t *TranslationMatrix4x4) Vector(out *V3) *V3 {
	out.X, out.Y, out.Z = t.Storage.Wx, t.Storage.Wy, t.Storage.Wz
	return out
}
