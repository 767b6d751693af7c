package validation

// rulesCorpus is the fixed excerpt of the pay provisions the reasoning
// service is asked to validate candidates against. Kept in one place so the
// prompt and the humans reviewing its output read the same text.
const rulesCorpus = `CREW PAY ENTITLEMENT RULES (excerpt)

Section 4.2 - Per diem
Crew members are owed an hourly allowance for the full time away from base,
measured from check-in (one hour before scheduled departure) to check-out
(thirty minutes after scheduled arrival). Domestic rate: $2.40 per hour.
International rate: $3.25 per hour.

Section 5.1 - International override
Trips crossing an international boundary pay flight time at $3.25 per hour,
with a minimum payment of $125.00 per trip.

Section 6.3 - Extended duty premium
Duty periods exceeding 12:30 pay the excess hours at two times the base rate
of $50.00 per hour. Duty periods exceeding 16:00 pay the excess hours at
three times the base rate.

Section 7.4 - Holiday premium
Flight time on a contractual holiday pays a 100% premium on the base rate of
$50.00 per hour.

Validation guidance: a claim whose computed amount matches the applicable
section within rounding is valid. Confidence above 95 should be recommended
for automatic approval; anything uncertain belongs in manual review.`
