package taskpool

// Submit0 submits plan against s, per spec §4.5. A zero-arity task is
// pushed straight onto s's RunQueue; any supplied id is ignored with a
// warning, the returned TaskInfo0 carries TaskIdNone, and the error is
// always nil.
func Submit0[R any](s *Submitter, plan *Plan0[R]) (TaskInfo0, error) {
	id, err := submitCore[R](s, plan.core, plan.targets)
	if err != nil {
		return TaskInfo0{}, err
	}
	return TaskInfo0{ID: id}, nil
}

// Submit1 submits plan against s, per spec §4.5. If the carrier has
// arity > 0 and no id was supplied, the Pool allocates the next nonzero
// id. Returns TaskIdAlreadyExistsError if the (supplied or allocated) id
// is already live in the Pool's WaitMap.
func Submit1[A1, R any](s *Submitter, plan *Plan1[A1, R]) (TaskInfo1[A1], error) {
	id, err := submitCore[R](s, plan.core, plan.targets)
	if err != nil {
		return TaskInfo1[A1]{}, err
	}
	return TaskInfo1[A1]{ID: id}, nil
}

// Submit2 submits plan against s, per spec §4.5. If the carrier has
// arity > 0 and no id was supplied, the Pool allocates the next nonzero
// id. Returns TaskIdAlreadyExistsError if the (supplied or allocated) id
// is already live in the Pool's WaitMap.
func Submit2[A1, A2, R any](s *Submitter, plan *Plan2[A1, A2, R]) (TaskInfo2[A1, A2], error) {
	id, err := submitCore[R](s, plan.core, plan.targets)
	if err != nil {
		return TaskInfo2[A1, A2]{}, err
	}
	return TaskInfo2[A1, A2]{ID: id}, nil
}

// Submit3 submits plan against s, per spec §4.5. If the carrier has
// arity > 0 and no id was supplied, the Pool allocates the next nonzero
// id. Returns TaskIdAlreadyExistsError if the (supplied or allocated) id
// is already live in the Pool's WaitMap.
func Submit3[A1, A2, A3, R any](s *Submitter, plan *Plan3[A1, A2, A3, R]) (TaskInfo3[A1, A2, A3], error) {
	id, err := submitCore[R](s, plan.core, plan.targets)
	if err != nil {
		return TaskInfo3[A1, A2, A3]{}, err
	}
	return TaskInfo3[A1, A2, A3]{ID: id}, nil
}

// Submit4 submits plan against s, per spec §4.5. If the carrier has
// arity > 0 and no id was supplied, the Pool allocates the next nonzero
// id. Returns TaskIdAlreadyExistsError if the (supplied or allocated) id
// is already live in the Pool's WaitMap.
func Submit4[A1, A2, A3, A4, R any](s *Submitter, plan *Plan4[A1, A2, A3, A4, R]) (TaskInfo4[A1, A2, A3, A4], error) {
	id, err := submitCore[R](s, plan.core, plan.targets)
	if err != nil {
		return TaskInfo4[A1, A2, A3, A4]{}, err
	}
	return TaskInfo4[A1, A2, A3, A4]{ID: id}, nil
}

// Submit5 submits plan against s, per spec §4.5. If the carrier has
// arity > 0 and no id was supplied, the Pool allocates the next nonzero
// id. Returns TaskIdAlreadyExistsError if the (supplied or allocated) id
// is already live in the Pool's WaitMap.
func Submit5[A1, A2, A3, A4, A5, R any](s *Submitter, plan *Plan5[A1, A2, A3, A4, A5, R]) (TaskInfo5[A1, A2, A3, A4, A5], error) {
	id, err := submitCore[R](s, plan.core, plan.targets)
	if err != nil {
		return TaskInfo5[A1, A2, A3, A4, A5]{}, err
	}
	return TaskInfo5[A1, A2, A3, A4, A5]{ID: id}, nil
}

// Submit6 submits plan against s, per spec §4.5. If the carrier has
// arity > 0 and no id was supplied, the Pool allocates the next nonzero
// id. Returns TaskIdAlreadyExistsError if the (supplied or allocated) id
// is already live in the Pool's WaitMap.
func Submit6[A1, A2, A3, A4, A5, A6, R any](s *Submitter, plan *Plan6[A1, A2, A3, A4, A5, A6, R]) (TaskInfo6[A1, A2, A3, A4, A5, A6], error) {
	id, err := submitCore[R](s, plan.core, plan.targets)
	if err != nil {
		return TaskInfo6[A1, A2, A3, A4, A5, A6]{}, err
	}
	return TaskInfo6[A1, A2, A3, A4, A5, A6]{ID: id}, nil
}

// Submit7 submits plan against s, per spec §4.5. If the carrier has
// arity > 0 and no id was supplied, the Pool allocates the next nonzero
// id. Returns TaskIdAlreadyExistsError if the (supplied or allocated) id
// is already live in the Pool's WaitMap.
func Submit7[A1, A2, A3, A4, A5, A6, A7, R any](s *Submitter, plan *Plan7[A1, A2, A3, A4, A5, A6, A7, R]) (TaskInfo7[A1, A2, A3, A4, A5, A6, A7], error) {
	id, err := submitCore[R](s, plan.core, plan.targets)
	if err != nil {
		return TaskInfo7[A1, A2, A3, A4, A5, A6, A7]{}, err
	}
	return TaskInfo7[A1, A2, A3, A4, A5, A6, A7]{ID: id}, nil
}

// Submit8 submits plan against s, per spec §4.5. If the carrier has
// arity > 0 and no id was supplied, the Pool allocates the next nonzero
// id. Returns TaskIdAlreadyExistsError if the (supplied or allocated) id
// is already live in the Pool's WaitMap.
func Submit8[A1, A2, A3, A4, A5, A6, A7, A8, R any](s *Submitter, plan *Plan8[A1, A2, A3, A4, A5, A6, A7, A8, R]) (TaskInfo8[A1, A2, A3, A4, A5, A6, A7, A8], error) {
	id, err := submitCore[R](s, plan.core, plan.targets)
	if err != nil {
		return TaskInfo8[A1, A2, A3, A4, A5, A6, A7, A8]{}, err
	}
	return TaskInfo8[A1, A2, A3, A4, A5, A6, A7, A8]{ID: id}, nil
}
