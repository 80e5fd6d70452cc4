package ber

// The following constructors build an empty Value of each core type
// stamped with a given TagSet, for use by external [Spec] implementations
// (such as berdec.dev/ber/schema) whose [Spec.Clone] must return a value
// reporting the same TagSet as the Spec itself.

func NewBoolean(ts TagSet) *Boolean                   { return newBoolean(ts).(*Boolean) }
func NewInteger(ts TagSet) *Integer                   { return newInteger(ts).(*Integer) }
func NewEnumerated(ts TagSet) *Integer                { return newEnumerated(ts).(*Integer) }
func NewNull(ts TagSet) *Null                         { return newNull(ts).(*Null) }
func NewReal(ts TagSet) *Real                         { return newReal(ts).(*Real) }
func NewBitString(ts TagSet) *BitString               { return newBitString(ts).(*BitString) }
func NewOctetString(ts TagSet) *OctetString           { return newOctetString(ts).(*OctetString) }
func NewObjectIdentifier(ts TagSet) *ObjectIdentifier { return newObjectIdentifier(ts).(*ObjectIdentifier) }
func NewRelativeOID(ts TagSet) *RelativeOID           { return newRelativeOID(ts).(*RelativeOID) }
func NewCharacterString(ts TagSet) *CharacterString   { return newCharacterString(ts).(*CharacterString) }
func NewTimeString(ts TagSet) *TimeString             { return newTimeString(ts).(*TimeString) }
func NewAnyValue(ts TagSet) *AnyValue                 { return newAny(ts).(*AnyValue) }
func NewSequenceValue(ts TagSet) *Sequence            { return newSequence(ts).(*Sequence) }
func NewSequenceOfValue(ts TagSet) *SequenceOf        { return newSequenceOf(ts).(*SequenceOf) }
